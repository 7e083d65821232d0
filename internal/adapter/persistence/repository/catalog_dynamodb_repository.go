package repository

import (
	"context"
	"fmt"
	"sort"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultServicesTableName   = "services"
	defaultUnitsTableName      = "units"
	defaultCategoriesTableName = "categories"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Rate        string `dynamodbav:"rate"`
	Unit        string `dynamodbav:"unit"`
	Category    string `dynamodbav:"category"`
	Description string `dynamodbav:"description,omitempty"`
	IconURL     string `dynamodbav:"icon_url,omitempty"`
	MinOrder    string `dynamodbav:"min_order,omitempty"`
	MaxOrder    string `dynamodbav:"max_order,omitempty"`
	Step        string `dynamodbav:"step"`

	CustomAttributes []customAttributeItem `dynamodbav:"custom_attributes,omitempty"`
}

type customAttributeItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

type unitItem struct {
	Key    string `dynamodbav:"key"`
	Name   string `dynamodbav:"name"`
	Symbol string `dynamodbav:"symbol"`
	Type   string `dynamodbav:"type"`
}

type categoryItem struct {
	Key  string `dynamodbav:"key"`
	Name string `dynamodbav:"name"`
}

// CatalogDynamoRepository is the content store for services, units and
// categories.
//
// Table requirements:
//   - services:   PK id (string)
//   - units:      PK key (string)
//   - categories: PK key (string)
//
// Listing scans; the catalog is small and read at human-interactive rates.

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	servicesTable   string
	unitsTable      string
	categoriesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		servicesTable:   getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		unitsTable:      getenvDefault("UNITS_TABLE", defaultUnitsTableName),
		categoriesTable: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *CatalogDynamoRepository) ListServices(ctx context.Context, category string) ([]entities.Service, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.servicesTable),
	}
	if category != "" {
		input.FilterExpression = aws.String("#category = :category")
		input.ExpressionAttributeNames = map[string]string{"#category": "category"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		}
	}

	var services []entities.Service
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			svc, err := fromServiceItem(it)
			if err != nil {
				return nil, err
			}
			services = append(services, svc)
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

func (r *CatalogDynamoRepository) SaveService(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.servicesTable),
		Item:      av,
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) DeleteService(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CatalogDynamoRepository) GetUnits(ctx context.Context) (map[string]entities.Unit, error) {
	units := map[string]entities.Unit{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.unitsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []unitItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			units[it.Key] = entities.Unit{
				Key:    it.Key,
				Name:   it.Name,
				Symbol: it.Symbol,
				Type:   entities.UnitType(it.Type),
			}
		}
	}
	return units, nil
}

func (r *CatalogDynamoRepository) SaveUnit(ctx context.Context, u entities.Unit) error {
	av, err := attributevalue.MarshalMap(unitItem{
		Key:    u.Key,
		Name:   u.Name,
		Symbol: u.Symbol,
		Type:   string(u.Type),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.unitsTable),
		Item:      av,
	})
	return err
}

func (r *CatalogDynamoRepository) DeleteUnit(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.unitsTable),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func (r *CatalogDynamoRepository) GetCategories(ctx context.Context) (map[string]entities.Category, error) {
	categories := map[string]entities.Category{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.categoriesTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []categoryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			categories[it.Key] = entities.Category{Key: it.Key, Name: it.Name}
		}
	}
	return categories, nil
}

func (r *CatalogDynamoRepository) SaveCategory(ctx context.Context, c entities.Category) error {
	av, err := attributevalue.MarshalMap(categoryItem{Key: c.Key, Name: c.Name})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.categoriesTable),
		Item:      av,
	})
	return err
}

func (r *CatalogDynamoRepository) DeleteCategory(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.categoriesTable),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	it := serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Rate:        s.Rate.String(),
		Unit:        s.Unit,
		Category:    s.Category,
		Description: s.Description,
		IconURL:     s.IconURL,
		Step:        s.Step.String(),
	}
	if s.MinOrder != nil {
		it.MinOrder = s.MinOrder.String()
	}
	if s.MaxOrder != nil {
		it.MaxOrder = s.MaxOrder.String()
	}
	for _, attr := range s.CustomAttributes {
		it.CustomAttributes = append(it.CustomAttributes, customAttributeItem(attr))
	}
	return it
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	rate, err := decimal.NewFromString(it.Rate)
	if err != nil {
		return entities.Service{}, fmt.Errorf("service %s: bad rate %q: %w", it.ID, it.Rate, err)
	}

	svc := entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Rate:        rate,
		Unit:        it.Unit,
		Category:    it.Category,
		Description: it.Description,
		IconURL:     it.IconURL,
		Step:        entities.DefaultStep,
	}
	if step, err := decimal.NewFromString(it.Step); err == nil && step.IsPositive() {
		svc.Step = step
	}
	if d, err := decimal.NewFromString(it.MinOrder); err == nil {
		svc.MinOrder = &d
	}
	if d, err := decimal.NewFromString(it.MaxOrder); err == nil {
		svc.MaxOrder = &d
	}
	for _, attr := range it.CustomAttributes {
		svc.CustomAttributes = append(svc.CustomAttributes, entities.CustomAttribute(attr))
	}
	return svc, nil
}

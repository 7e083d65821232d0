package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubmissionsTableName = "submissions"

type submissionItem struct {
	ID           string `dynamodbav:"id"`
	Calculation  string `dynamodbav:"calculation"`
	Customer     string `dynamodbav:"customer_info"`
	Status       string `dynamodbav:"status"`
	Notes        string `dynamodbav:"notes,omitempty"`
	HTMLEstimate string `dynamodbav:"html_estimate,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// SubmissionDynamoRepository persists inquiry submissions.
//
// Table requirements:
//   - submissions: PK id (string)
//
// The calculation and customer snapshots are stored as JSON documents:
// they are frozen value objects, never queried field-by-field. Listing
// scans and pages client-side, which is fine at inquiry volumes.

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	it, err := toSubmissionItem(s)
	if err != nil {
		return entities.Submission{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Submission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it)
}

func (r *SubmissionDynamoRepository) SetHTMLEstimate(ctx context.Context, id, html string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #html_estimate = :html_estimate, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":html_estimate": &types.AttributeValueMemberS{Value: html},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#html_estimate": "html_estimate",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *SubmissionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SubmissionDynamoRepository) UpdateNotes(ctx context.Context, id, notes string) (entities.Submission, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notes = :notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *SubmissionDynamoRepository) List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]entities.Submission, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var submissions []entities.Submission
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []submissionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			sub, err := fromSubmissionItem(it)
			if err != nil {
				return nil, err
			}
			submissions = append(submissions, sub)
		}
	}

	// Newest first.
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})

	if offset >= len(submissions) {
		return []entities.Submission{}, nil
	}
	submissions = submissions[offset:]
	if limit > 0 && limit < len(submissions) {
		submissions = submissions[:limit]
	}
	return submissions, nil
}

func (r *SubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *SubmissionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Submission, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it)
}

func toSubmissionItem(s entities.Submission) (submissionItem, error) {
	calculation, err := json.Marshal(s.Calculation)
	if err != nil {
		return submissionItem{}, err
	}
	customer, err := json.Marshal(s.Customer)
	if err != nil {
		return submissionItem{}, err
	}

	return submissionItem{
		ID:           s.ID,
		Calculation:  string(calculation),
		Customer:     string(customer),
		Status:       string(s.Status),
		Notes:        s.Notes,
		HTMLEstimate: s.HTMLEstimate,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSubmissionItem(it submissionItem) (entities.Submission, error) {
	sub := entities.Submission{
		ID:           it.ID,
		Status:       entities.SubmissionStatus(it.Status),
		Notes:        it.Notes,
		HTMLEstimate: it.HTMLEstimate,
	}
	if it.Calculation != "" {
		if err := json.Unmarshal([]byte(it.Calculation), &sub.Calculation); err != nil {
			return entities.Submission{}, err
		}
	}
	if it.Customer != "" {
		if err := json.Unmarshal([]byte(it.Customer), &sub.Customer); err != nil {
			return entities.Submission{}, err
		}
	}
	sub.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	sub.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return sub, nil
}

func mergeNames(dst, src map[string]string) map[string]string {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

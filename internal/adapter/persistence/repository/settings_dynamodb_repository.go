package repository

import (
	"context"

	"servicecalc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SettingsDynamoRepository is the key/value settings store.
//
// Table requirements:
//   - settings: PK key (string)
//
// Keys that were never written resolve to the caller-supplied default, so a
// fresh install needs no seeding to behave sensibly.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsStore = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context, key, def string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return def, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Value, nil
}

func (r *SettingsDynamoRepository) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(settingItem{Key: key, Value: value})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

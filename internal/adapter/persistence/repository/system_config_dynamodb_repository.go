package repository

import (
	"context"

	"oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSystemConfigTableName = "system_config"

type systemConfigItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SystemConfigDynamoRepository reads key/value settings from DynamoDB.
//
// Table requirements:
//   - PK: key (string)
type SystemConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISystemConfigRepository = (*SystemConfigDynamoRepository)(nil)

func NewSystemConfigDynamoRepository(ddb *dynamodb.Client) *SystemConfigDynamoRepository {
	return &SystemConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SYSTEM_CONFIG_TABLE", defaultSystemConfigTableName),
	}
}

func (r *SystemConfigDynamoRepository) GetValue(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it systemConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

// SetValue upserts a setting; used by the operator CLI.
func (r *SystemConfigDynamoRepository) SetValue(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(systemConfigItem{Key: key, Value: value})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoTableSpecs describes every table the DynamoDB repositories expect,
// with names resolved from the environment.
func DynamoTableSpecs() []*dynamodb.CreateTableInput {
	stringAttr := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hashKey := func(name string) []types.KeySchemaElement {
		return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
	}
	simple := func(table, key string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{stringAttr(key)},
			KeySchema:            hashKey(key),
			BillingMode:          types.BillingModePayPerRequest,
		}
	}

	payments := simple(getenvDefault("ORDER_PAYMENTS_TABLE", defaultOrderPaymentsTableName), "id")
	payments.AttributeDefinitions = append(payments.AttributeDefinitions, stringAttr("order_id"))
	payments.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName:  aws.String(orderPaymentsOrderIDIndex),
		KeySchema:  hashKey("order_id"),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []*dynamodb.CreateTableInput{
		simple(getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName), "id"),
		simple(getenvDefault("CLIENTS_TABLE", defaultClientsTableName), "id"),
		simple(getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName), "id"),
		simple(getenvDefault("SYSTEM_CONFIG_TABLE", defaultSystemConfigTableName), "key"),
		payments,
	}
}

// EnsureDynamoTables creates missing tables. Existing tables are left as is.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range DynamoTableSpecs() {
		name := aws.ToString(spec.TableName)
		_, err := ddb.CreateTable(ctx, spec)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				zap.L().Info("[repository][dynamodb] table exists", zap.String("table", name))
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		zap.L().Info("[repository][dynamodb] table created", zap.String("table", name))
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	orderNumberSequenceKey        = "os_sequence"
	batchGetMaxKeys               = 100
)

type serviceOrderLineItem struct {
	ID          string   `dynamodbav:"id"`
	Description string   `dynamodbav:"description"`
	Status      string   `dynamodbav:"status"`
	TotalPrice  *float64 `dynamodbav:"total_price,omitempty"`
	Quantidade  int      `dynamodbav:"quantidade"`
}

type serviceOrderItem struct {
	ID                  string                 `dynamodbav:"id"`
	OrderNumber         int64                  `dynamodbav:"order_number"`
	ClientID            string                 `dynamodbav:"client_id"`
	VehicleID           string                 `dynamodbav:"vehicle_id"`
	MechanicID          string                 `dynamodbav:"mechanic_id,omitempty"`
	Status              string                 `dynamodbav:"status"`
	Total               *float64               `dynamodbav:"total,omitempty"`
	ProblemDescription  *string                `dynamodbav:"problem_description,omitempty"`
	CreatedAt           string                 `dynamodbav:"created_at"`
	CompletedAt         string                 `dynamodbav:"completed_at,omitempty"`
	EstimatedCompletion string                 `dynamodbav:"estimated_completion,omitempty"`
	Items               []serviceOrderLineItem `dynamodbav:"items"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - service_orders PK: id (string); line items live in the "items" list
//   - clients / vehicles PK: id, joined with BatchGetItem on reads
//   - system_config PK: key; the "os_sequence" row holds the order counter
type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	clientsTable  string
	vehiclesTable string
	configTable   string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		clientsTable:  getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		vehiclesTable: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		configTable:   getenvDefault("SYSTEM_CONFIG_TABLE", defaultSystemConfigTableName),
	}
}

func (r *ServiceOrderDynamoRepository) ListWithDetails(ctx context.Context) ([]entities.ServiceOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var orders []entities.ServiceOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		for _, raw := range page.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
	}

	if err := r.attachDetails(ctx, orders); err != nil {
		return nil, err
	}
	// Scan order is arbitrary.
	sortByCreatedAt(orders)
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := r.get(ctx, id)
	if err != nil || o.ID == "" {
		return o, err
	}
	orders := []entities.ServiceOrder{o}
	if err := r.attachDetails(ctx, orders); err != nil {
		return entities.ServiceOrder{}, err
	}
	return orders[0], nil
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, completedAt *time.Time) error {
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{"#status": "status"}
	if completedAt != nil {
		expr += ", #completed_at = :completed_at"
		vals[":completed_at"] = &types.AttributeValueMemberS{Value: formatTime(*completedAt)}
		names["#completed_at"] = "completed_at"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("service order %s: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) UpdateItemStatus(ctx context.Context, orderID, itemID string, status entities.ItemStatus) (entities.ServiceOrder, error) {
	o, err := r.get(ctx, orderID)
	if err != nil || o.ID == "" {
		return o, err
	}
	idx := -1
	for i, it := range o.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.ServiceOrder{}, nil
	}

	// The condition guards against the list being rewritten since the read.
	path := "#items[" + strconv.Itoa(idx) + "]"
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String(path + ".#item_id = :item_id"),
		UpdateExpression:    aws.String("SET " + path + ".#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_id": &types.AttributeValueMemberS{Value: itemID},
			":status":  &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#items":   "items",
			"#item_id": "id",
			"#status":  "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// NextOrderNumber atomically increments the counter row in system_config.
func (r *ServiceOrderDynamoRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.configTable),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: orderNumberSequenceKey},
		},
		UpdateExpression: aws.String("ADD #counter :one"),
		ExpressionAttributeNames: map[string]string{
			"#counter": "counter",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("increment order number: %w", err)
	}
	n, ok := out.Attributes["counter"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("increment order number: counter missing from response")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ServiceOrderDynamoRepository) get(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// attachDetails joins clients and vehicles onto orders in place. Dangling
// references are left nil.
func (r *ServiceOrderDynamoRepository) attachDetails(ctx context.Context, orders []entities.ServiceOrder) error {
	if len(orders) == 0 {
		return nil
	}
	clientIDs := make([]string, 0, len(orders))
	vehicleIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		clientIDs = append(clientIDs, o.ClientID)
		vehicleIDs = append(vehicleIDs, o.VehicleID)
	}

	rawClients, err := batchGetByID(ctx, r.ddb, r.clientsTable, uniqueNonEmpty(clientIDs))
	if err != nil {
		return fmt.Errorf("load clients: %w", err)
	}
	rawVehicles, err := batchGetByID(ctx, r.ddb, r.vehiclesTable, uniqueNonEmpty(vehicleIDs))
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}

	clients := make(map[string]entities.Client, len(rawClients))
	for id, raw := range rawClients {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		clients[id] = fromClientItem(it)
	}
	vehicles := make(map[string]entities.Vehicle, len(rawVehicles))
	for id, raw := range rawVehicles {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		vehicles[id] = fromVehicleItem(it)
	}

	for i := range orders {
		if c, ok := clients[orders[i].ClientID]; ok {
			orders[i].Client = &c
		}
		if v, ok := vehicles[orders[i].VehicleID]; ok {
			orders[i].Vehicle = &v
		}
	}
	return nil
}

// batchGetByID reads rows by primary key in chunks of 100, retrying
// unprocessed keys. The result is keyed by id.
func batchGetByID(ctx context.Context, ddb *dynamodb.Client, table string, ids []string) (map[string]map[string]types.AttributeValue, error) {
	out := make(map[string]map[string]types.AttributeValue, len(ids))
	for start := 0; start < len(ids); start += batchGetMaxKeys {
		end := min(start+batchGetMaxKeys, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{table: {Keys: keys}}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt >= 5 {
				return nil, fmt.Errorf("batch get %s: unprocessed keys after %d attempts", table, attempt)
			}
			if attempt > 0 {
				zap.L().Warn("[repository][dynamodb] retrying unprocessed keys", zap.String("table", table), zap.Int("attempt", attempt))
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
				}
			}
			resp, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, item := range resp.Responses[table] {
				if id, ok := item["id"].(*types.AttributeValueMemberS); ok {
					out[id.Value] = item
				}
			}
			request = resp.UnprocessedKeys
		}
	}
	return out, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	lines := make([]serviceOrderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, serviceOrderLineItem{
			ID:          it.ID,
			Description: it.Description,
			Status:      string(it.Status),
			TotalPrice:  it.TotalPrice,
			Quantidade:  it.Quantidade,
		})
	}
	return serviceOrderItem{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		ClientID:            o.ClientID,
		VehicleID:           o.VehicleID,
		MechanicID:          o.MechanicID,
		Status:              string(o.Status),
		Total:               o.Total,
		ProblemDescription:  o.ProblemDescription,
		CreatedAt:           formatTime(o.CreatedAt),
		CompletedAt:         formatTimePtr(o.CompletedAt),
		EstimatedCompletion: formatTimePtr(o.EstimatedCompletion),
		Items:               lines,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                  it.ID,
		OrderNumber:         it.OrderNumber,
		ClientID:            it.ClientID,
		VehicleID:           it.VehicleID,
		MechanicID:          it.MechanicID,
		Status:              entities.OrderStatus(it.Status),
		Total:               it.Total,
		ProblemDescription:  it.ProblemDescription,
		CreatedAt:           parseTime(it.CreatedAt),
		CompletedAt:         parseTimePtr(it.CompletedAt),
		EstimatedCompletion: parseTimePtr(it.EstimatedCompletion),
	}
	for _, line := range it.Items {
		o.Items = append(o.Items, entities.ServiceOrderItem{
			ID:          line.ID,
			OrderID:     it.ID,
			Description: line.Description,
			Status:      entities.ItemStatus(line.Status),
			TotalPrice:  line.TotalPrice,
			Quantidade:  line.Quantidade,
		})
	}
	return o
}

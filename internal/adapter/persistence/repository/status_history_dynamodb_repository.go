package repository

import (
	"context"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStatusHistoryTableName = "order_status_history"
	historyOrderIDIndex           = "order_id-index"
)

type statusHistoryItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Status    string `dynamodbav:"status"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StatusHistoryDynamoRepository persists OrderStatusHistory entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, SK: created_at)

type StatusHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryDynamoRepository)(nil)

func NewStatusHistoryDynamoRepository(ddb *dynamodb.Client) *StatusHistoryDynamoRepository {
	return &StatusHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_HISTORY_TABLE", defaultStatusHistoryTableName),
	}
}

func (r *StatusHistoryDynamoRepository) Append(ctx context.Context, h entities.OrderStatusHistory) (entities.OrderStatusHistory, error) {
	it := toStatusHistoryItem(h)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderStatusHistory{}, err
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
		return entities.OrderStatusHistory{}, err
	}
	return h, nil
}

// ListByOrderID returns the order's timeline oldest-first. An empty slice is
// a valid result for orders with no recorded transitions.
func (r *StatusHistoryDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	history := make([]entities.OrderStatusHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		history = append(history, fromStatusHistoryItem(it))
	}
	return history, nil
}

func toStatusHistoryItem(h entities.OrderStatusHistory) statusHistoryItem {
	return statusHistoryItem{
		ID:        h.ID,
		OrderID:   h.OrderID,
		Status:    string(h.Status),
		Message:   h.Message,
		CreatedAt: formatTime(h.CreatedAt),
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.OrderStatusHistory {
	return entities.OrderStatusHistory{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Status:    entities.OrderStatus(it.Status),
		Message:   it.Message,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

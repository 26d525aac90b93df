package repository

import (
	"context"
	"strings"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderTableName = "orders"
	orderTrackingIDIndex  = "tracking_id-index"
)

type orderItemRecord struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Quantity  int     `dynamodbav:"quantity"`
}

type shippingAddressRecord struct {
	FullName     string `dynamodbav:"full_name"`
	Phone        string `dynamodbav:"phone"`
	AddressLine1 string `dynamodbav:"address_line1"`
	AddressLine2 string `dynamodbav:"address_line2"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	Pincode      string `dynamodbav:"pincode"`
}

type orderItem struct {
	ID               string                `dynamodbav:"id"`
	TrackingID       string                `dynamodbav:"tracking_id"`
	UserID           string                `dynamodbav:"user_id"`
	Phone            string                `dynamodbav:"phone"`
	Status           string                `dynamodbav:"status"`
	Currency         string                `dynamodbav:"currency"`
	Amount           float64               `dynamodbav:"amount"`
	Items            []orderItemRecord     `dynamodbav:"items"`
	ShippingAddress  shippingAddressRecord `dynamodbav:"shipping_address"`
	GatewayOrderID   string                `dynamodbav:"gateway_order_id"`
	GatewayPaymentID string                `dynamodbav:"gateway_payment_id"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tracking_id-index (PK: tracking_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrderTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	if out.Item == nil {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderTrackingIDIndex),
		KeyConditionExpression: aws.String("tracking_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: strings.ToUpper(trackingID)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) (entities.Order, error) {
	return r.update(ctx, id, "SET gateway_order_id = :gid, updated_at = :now", map[string]types.AttributeValue{
		":gid": &types.AttributeValueMemberS{Value: gatewayOrderID},
	})
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, gatewayPaymentID string) (entities.Order, error) {
	expr := "SET #status = :status, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if gatewayPaymentID != "" {
		expr += ", gateway_payment_id = :pid"
		values[":pid"] = &types.AttributeValueMemberS{Value: gatewayPaymentID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: withNow(values),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: withNow(values),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderItemRecord, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderItemRecord{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}
	return orderItem{
		ID:         o.ID,
		TrackingID: o.TrackingID,
		UserID:     o.UserID,
		Phone:      o.Phone,
		Status:     string(o.Status),
		Currency:   o.Currency,
		Amount:     o.Amount,
		Items:      items,
		ShippingAddress: shippingAddressRecord{
			FullName:     o.ShippingAddress.FullName,
			Phone:        o.ShippingAddress.Phone,
			AddressLine1: o.ShippingAddress.AddressLine1,
			AddressLine2: o.ShippingAddress.AddressLine2,
			City:         o.ShippingAddress.City,
			State:        o.ShippingAddress.State,
			Pincode:      o.ShippingAddress.Pincode,
		},
		GatewayOrderID:   o.GatewayOrderID,
		GatewayPaymentID: o.GatewayPaymentID,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}
	return entities.Order{
		ID:         it.ID,
		TrackingID: it.TrackingID,
		UserID:     it.UserID,
		Phone:      it.Phone,
		Status:     entities.OrderStatus(it.Status),
		Currency:   it.Currency,
		Amount:     it.Amount,
		Items:      items,
		ShippingAddress: entities.ShippingAddress{
			FullName:     it.ShippingAddress.FullName,
			Phone:        it.ShippingAddress.Phone,
			AddressLine1: it.ShippingAddress.AddressLine1,
			AddressLine2: it.ShippingAddress.AddressLine2,
			City:         it.ShippingAddress.City,
			State:        it.ShippingAddress.State,
			Pincode:      it.ShippingAddress.Pincode,
		},
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

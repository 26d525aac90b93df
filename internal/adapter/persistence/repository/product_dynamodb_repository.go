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

const defaultProductTableName = "products"

type productItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description"`
	Price       float64  `dynamodbav:"price"`
	Category    string   `dynamodbav:"category"`
	Tags        []string `dynamodbav:"tags"`
	ImageURL    string   `dynamodbav:"image_url"`
	InStock     bool     `dynamodbav:"in_stock"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductTableName),
	}
}

func (r *ProductDynamoRepository) List(ctx context.Context, category string) ([]entities.Product, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if category != "" {
		in.FilterExpression = aws.String("category = :category")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(out.Items))
	for _, raw := range out.Items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if out.Item == nil {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    it.Category,
		Tags:        it.Tags,
		ImageURL:    it.ImageURL,
		InStock:     it.InStock,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

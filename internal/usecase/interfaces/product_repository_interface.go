package interfaces

import (
	"context"

	"sama-store/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for catalog products.

type IProductRepository interface {
	List(ctx context.Context, category string) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// IProductUseCase exposes catalog browsing reads.

type IProductUseCase interface {
	ListProducts(ctx context.Context, category string) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) ListProducts(ctx context.Context, category string) ([]entities.Product, error) {
	return u.repo.List(ctx, strings.TrimSpace(category))
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

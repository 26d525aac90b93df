package usecase

import (
	"context"
	"errors"
	"testing"

	"sama-store/internal/domain/entities"
	mock_interfaces "sama-store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("passes trimmed category filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "sarees").Return([]entities.Product{
			{ID: "prod-1", Name: "Kanjivaram Saree", Category: "sarees"},
		}, nil)

		products, err := uc.ListProducts(ctx, " sarees ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 || products[0].ID != "prod-1" {
			t.Fatalf("unexpected products %+v", products)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "").Return([]entities.Product{}, nil)

		products, err := uc.ListProducts(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected empty list, got %d", len(products))
		}
	})
}

func TestProductUseCase_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		if _, err := uc.GetProduct(ctx, "  "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prod-404").Return(entities.Product{}, nil)

		if _, err := uc.GetProduct(ctx, "prod-404"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{
			ID:    "prod-1",
			Name:  "Kanjivaram Saree",
			Price: 2100,
		}, nil)

		product, err := uc.GetProduct(ctx, " prod-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Name != "Kanjivaram Saree" {
			t.Fatalf("unexpected product %+v", product)
		}
	})
}

package interfaces

import (
	"context"

	"sama-store/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByTrackingID resolves through the tracking_id GSI; callers pass the
// uppercase-normalized tracking id.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.Order, error)
	SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, gatewayPaymentID string) (entities.Order, error)
}

package interfaces

import (
	"context"

	"sama-store/internal/domain/entities"
)

// IStatusHistoryRepository abstracts the append-only order status audit log.
//
// ListByOrderID returns rows ascending by created_at; an empty slice is a
// valid result for freshly created orders.

type IStatusHistoryRepository interface {
	Append(ctx context.Context, h entities.OrderStatusHistory) (entities.OrderStatusHistory, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"
)

// OrderTrackingProjection is the read-only view served to unauthenticated
// callers. It deliberately excludes the address, line items and payment
// identifiers so the public endpoint cannot leak personal data.
type OrderTrackingProjection struct {
	ID         string               `json:"id"`
	TrackingID string               `json:"tracking_id"`
	Status     entities.OrderStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// IOrderTrackingUseCase exposes public order tracking lookups.

type IOrderTrackingUseCase interface {
	TrackOrder(ctx context.Context, trackingID string) (OrderTrackingProjection, error)
	StatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error)
}

type OrderTrackingUseCase struct {
	repo        interfaces.IOrderRepository
	historyRepo interfaces.IStatusHistoryRepository
}

var _ IOrderTrackingUseCase = (*OrderTrackingUseCase)(nil)

func NewOrderTrackingUseCase(repo interfaces.IOrderRepository, historyRepo interfaces.IStatusHistoryRepository) *OrderTrackingUseCase {
	return &OrderTrackingUseCase{repo: repo, historyRepo: historyRepo}
}

// TrackOrder resolves a tracking id case-insensitively; ids are stored
// uppercase so normalizing the input gives an exact-match lookup.
func (u *OrderTrackingUseCase) TrackOrder(ctx context.Context, trackingID string) (OrderTrackingProjection, error) {
	trackingID = strings.ToUpper(strings.TrimSpace(trackingID))
	if trackingID == "" {
		return OrderTrackingProjection{}, ErrOrderNotFound
	}

	order, err := u.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return OrderTrackingProjection{}, err
	}
	if order.ID == "" {
		return OrderTrackingProjection{}, ErrOrderNotFound
	}

	return OrderTrackingProjection{
		ID:         order.ID,
		TrackingID: order.TrackingID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}, nil
}

// StatusHistory returns the audit rows ascending by created_at. An empty
// slice is valid: the initial "pending" step is inferred from the order's
// creation time, not a history row.
func (u *OrderTrackingUseCase) StatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.historyRepo.ListByOrderID(ctx, orderID)
}

package response

import (
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase"
)

// CheckoutResponse is the shape the storefront's payment widget expects: the
// gateway order plus the public key the browser-side SDK needs.
type CheckoutResponse struct {
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	DBOrderID  string `json:"dbOrderId"`
	Key        string `json:"key"`
	TrackingID string `json:"trackingId"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:    r.GatewayOrderID,
		Amount:     r.AmountMinor,
		Currency:   r.Currency,
		DBOrderID:  r.Order.ID,
		Key:        r.KeyID,
		TrackingID: r.Order.TrackingID,
	}
}

type PaymentVerifiedResponse struct {
	Verified   bool   `json:"verified"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	TrackingID string `json:"tracking_id"`
}

func FromPaidOrder(o entities.Order) PaymentVerifiedResponse {
	return PaymentVerifiedResponse{
		Verified:   true,
		OrderID:    o.ID,
		Status:     string(o.Status),
		TrackingID: o.TrackingID,
	}
}

type OrderResponse struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	Currency   string    `json:"currency"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		TrackingID: o.TrackingID,
		Status:     string(o.Status),
		Currency:   o.Currency,
		Amount:     o.Amount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

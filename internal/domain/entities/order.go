package entities

import "time"

// OrderStatus represents the delivery lifecycle of a storefront order.
//
// Domain notes:
//   - "pending" is set at checkout initiation, before the payment gateway
//     confirms anything.
//   - "paid" is set only after the gateway callback signature is verified.
//   - Later statuses are driven by admin/fulfilment actions.

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// statusRank orders the lifecycle; transitions must be strictly forward.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusPaid:           1,
	OrderStatusProcessing:     2,
	OrderStatusShipped:        3,
	OrderStatusOutForDelivery: 4,
	OrderStatusDelivered:      5,
}

// IsValid reports whether s is one of the known lifecycle statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle
// monotonic. Backward and same-status transitions are rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// OrderItem is one purchased line item, captured at checkout time so later
// catalog changes do not alter the order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ShippingAddress holds the delivery address collected at checkout.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// Order is the checkout order persisted by the storefront.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tracking_id-index): tracking_id
//
// TrackingID is the only identifier exposed to unauthenticated callers; it is
// stored uppercase and looked up case-insensitively.
type Order struct {
	ID              string          `json:"id"`
	TrackingID      string          `json:"tracking_id"`
	UserID          string          `json:"user_id"`
	Phone           string          `json:"phone"`
	Status          OrderStatus     `json:"status"`
	Currency        string          `json:"currency"`
	Amount          float64         `json:"amount"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	GatewayOrderID  string          `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string         `json:"gateway_payment_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

package entities

import "time"

// OrderStatusHistory is one append-only audit row recorded per order status
// transition.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id, sort key created_at
//
// Rows are returned ascending by created_at for timeline rendering. An order
// with no rows is valid: its initial "pending" entry is inferred from
// Order.CreatedAt.
type OrderStatusHistory struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

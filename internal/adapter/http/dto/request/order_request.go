package request

import (
	"errors"
	"strings"

	"sama-store/internal/domain/entities"
)

var (
	ErrEmptyCart       = errors.New("order must contain at least one item")
	ErrInvalidCartItem = errors.New("invalid cart item")
)

type CartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required"`
}

type ShippingAddressRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
}

// CheckoutRequest is the payload posted by the storefront checkout page.
type CheckoutRequest struct {
	UserID          string                 `json:"user_id" binding:"required"`
	Phone           string                 `json:"phone" binding:"required"`
	Items           []CartItemRequest      `json:"items" binding:"required"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
}

func (r CheckoutRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r CheckoutRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}

func (r CheckoutRequest) ResolveItems() ([]entities.OrderItem, error) {
	if len(r.Items) == 0 {
		return nil, ErrEmptyCart
	}
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 || it.Price < 0 {
			return nil, ErrInvalidCartItem
		}
		items = append(items, entities.OrderItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Name:      strings.TrimSpace(it.Name),
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

func (r CheckoutRequest) ResolveAddress() entities.ShippingAddress {
	return entities.ShippingAddress{
		FullName:     strings.TrimSpace(r.ShippingAddress.FullName),
		Phone:        strings.TrimSpace(r.ShippingAddress.Phone),
		AddressLine1: strings.TrimSpace(r.ShippingAddress.AddressLine1),
		AddressLine2: strings.TrimSpace(r.ShippingAddress.AddressLine2),
		City:         strings.TrimSpace(r.ShippingAddress.City),
		State:        strings.TrimSpace(r.ShippingAddress.State),
		Pincode:      strings.TrimSpace(r.ShippingAddress.Pincode),
	}
}

// PaymentVerifyRequest carries the gateway callback fields the storefront
// receives after a payment attempt.
type PaymentVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderID           string `json:"order_id" binding:"required"`
}

type AdminStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

func (r AdminStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

func (r AdminStatusRequest) ResolveMessage() string {
	return strings.TrimSpace(r.Message)
}

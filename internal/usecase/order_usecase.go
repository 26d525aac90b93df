package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"
	"sama-store/internal/util"

	"github.com/google/uuid"
)

var (
	ErrOrderValidation          = errors.New("order validation failed")
	ErrPhoneNotVerified         = errors.New("phone not verified")
	ErrPaymentGatewayFailed     = errors.New("payment gateway request failed")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrSignatureMismatch        = errors.New("payment signature mismatch")
	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidOrderStatus       = errors.New("invalid order status")
	ErrInvalidStatusTransition  = errors.New("invalid order status transition")
)

const orderCurrency = "INR"

// CheckoutResult carries everything the client needs to open the payment
// gateway widget plus the identifiers it will need afterwards.
type CheckoutResult struct {
	Order          entities.Order
	GatewayOrderID string
	AmountMinor    int64
	Currency       string
	KeyID          string
}

// IOrderUseCase exposes checkout and payment verification.
//
// Checkout persists a pending order before talking to the gateway, so a
// gateway failure leaves an orphaned pending order behind (accepted edge
// case; each retry issues a fresh order and tracking id). VerifyPayment is
// the only path that moves an order to "paid".

type IOrderUseCase interface {
	Checkout(ctx context.Context, userID, phone string, items []entities.OrderItem, address entities.ShippingAddress) (CheckoutResult, error)
	VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature, orderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, message string) (entities.Order, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	historyRepo interfaces.IStatusHistoryRepository
	gateway     interfaces.IPaymentGateway
	cache       interfaces.IVerificationCache
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, historyRepo interfaces.IStatusHistoryRepository, gateway interfaces.IPaymentGateway, cache interfaces.IVerificationCache) *OrderUseCase {
	return &OrderUseCase{repo: repo, historyRepo: historyRepo, gateway: gateway, cache: cache}
}

func (u *OrderUseCase) Checkout(ctx context.Context, userID, phone string, items []entities.OrderItem, address entities.ShippingAddress) (CheckoutResult, error) {
	userID = strings.TrimSpace(userID)
	phone = normalizePhone(phone)
	if userID == "" || phone == "" {
		return CheckoutResult{}, ErrOrderValidation
	}
	if err := validateAddress(address); err != nil {
		return CheckoutResult{}, err
	}
	amount, err := resolveAmount(items)
	if err != nil {
		return CheckoutResult{}, err
	}

	if u.gateway == nil {
		util.Error("checkout rejected: payment gateway not configured", util.String("user_id", userID))
		return CheckoutResult{}, ErrGatewayNotConfigured
	}

	verified, err := u.cache.IsVerified(ctx, userID, phone)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to check phone verification: %w", err)
	}
	if !verified {
		return CheckoutResult{}, ErrPhoneNotVerified
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		TrackingID:      generateTrackingID(),
		UserID:          userID,
		Phone:           phone,
		Status:          entities.OrderStatusPending,
		Currency:        orderCurrency,
		Amount:          amount,
		Items:           items,
		ShippingAddress: address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := u.repo.Create(ctx, order); err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	gatewayOrder, err := u.gateway.CreateOrder(ctx, toMinorUnits(amount), orderCurrency, order.ID)
	if err != nil {
		// No rollback: the order stays pending and the client may retry
		// checkout, which issues a new order.
		util.Error("gateway order creation failed",
			util.String("order_id", order.ID),
			util.ErrorField(err))
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}

	order, err = u.repo.SetGatewayOrderID(ctx, order.ID, gatewayOrder.ID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to attach gateway order: %w", err)
	}

	util.Info("order created",
		util.String("order_id", order.ID),
		util.String("tracking_id", order.TrackingID),
		util.Float64("amount", amount))

	return CheckoutResult{
		Order:          order,
		GatewayOrderID: gatewayOrder.ID,
		AmountMinor:    gatewayOrder.AmountMinor,
		Currency:       gatewayOrder.Currency,
		KeyID:          u.gateway.KeyID(),
	}, nil
}

func (u *OrderUseCase) VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature, orderID string) (entities.Order, error) {
	gatewayOrderID = strings.TrimSpace(gatewayOrderID)
	gatewayPaymentID = strings.TrimSpace(gatewayPaymentID)
	signature = strings.TrimSpace(signature)
	orderID = strings.TrimSpace(orderID)
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" || orderID == "" {
		return entities.Order{}, ErrOrderValidation
	}

	if u.gateway == nil {
		return entities.Order{}, ErrGatewayNotConfigured
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load order: %w", err)
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.GatewayOrderID != "" && order.GatewayOrderID != gatewayOrderID {
		util.Warn("payment callback for wrong gateway order",
			util.String("order_id", orderID),
			util.String("gateway_order_id", gatewayOrderID))
		return entities.Order{}, ErrSignatureMismatch
	}

	if !u.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		// Terminal for this callback: the order is left untouched and no
		// history row is written.
		util.Warn("payment signature mismatch",
			util.String("order_id", orderID),
			util.String("gateway_order_id", gatewayOrderID))
		return entities.Order{}, ErrSignatureMismatch
	}

	// The callback route is public and a valid signature never expires, so a
	// replayed or late callback can arrive after the order has moved on.
	if order.Status == entities.OrderStatusPaid {
		util.Info("duplicate payment callback ignored",
			util.String("order_id", orderID),
			util.String("gateway_payment_id", gatewayPaymentID))
		return order, nil
	}
	if !order.Status.CanTransitionTo(entities.OrderStatusPaid) {
		util.Warn("payment callback for fulfilled order refused",
			util.String("order_id", orderID),
			util.String("status", string(order.Status)))
		return entities.Order{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, orderID, entities.OrderStatusPaid, gatewayPaymentID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to mark order paid: %w", err)
	}
	if err := u.appendHistory(ctx, orderID, entities.OrderStatusPaid, "Payment confirmed"); err != nil {
		return entities.Order{}, err
	}

	util.Info("order paid",
		util.String("order_id", orderID),
		util.String("tracking_id", updated.TrackingID),
		util.String("gateway_payment_id", gatewayPaymentID))
	return updated, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, message string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderValidation
	}
	if !status.IsValid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load order: %w", err)
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return entities.Order{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, orderID, status, "")
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	if err := u.appendHistory(ctx, orderID, status, message); err != nil {
		return entities.Order{}, err
	}

	util.Info("order status updated",
		util.String("order_id", orderID),
		util.String("status", string(status)))
	return updated, nil
}

func (u *OrderUseCase) appendHistory(ctx context.Context, orderID string, status entities.OrderStatus, message string) error {
	_, err := u.historyRepo.Append(ctx, entities.OrderStatusHistory{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    status,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

func validateAddress(a entities.ShippingAddress) error {
	// AddressLine2 is the only optional field.
	required := []string{a.FullName, a.Phone, a.AddressLine1, a.City, a.State, a.Pincode}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return ErrOrderValidation
		}
	}
	return nil
}

func resolveAmount(items []entities.OrderItem) (float64, error) {
	if len(items) == 0 {
		return 0, ErrOrderValidation
	}
	total := 0.0
	for _, it := range items {
		if it.Quantity <= 0 || it.Price < 0 {
			return 0, ErrOrderValidation
		}
		total += it.Price * float64(it.Quantity)
	}
	if total <= 0 {
		return 0, ErrOrderValidation
	}
	return total, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

const trackingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateTrackingID returns a public order identifier like "SAMA-X7K2P9".
func generateTrackingID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = trackingIDAlphabet[int(b[i])%len(trackingIDAlphabet)]
	}
	return "SAMA-" + string(b)
}

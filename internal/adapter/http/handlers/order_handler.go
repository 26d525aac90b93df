package handlers

import (
	"errors"
	"net/http"

	request "sama-store/internal/adapter/http/dto/request"
	response "sama-store/internal/adapter/http/dto/response"
	"sama-store/internal/usecase"
	"sama-store/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// OrderHandler handles checkout, payment verification and the admin status
// transition endpoint.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Checkout creates a pending order and a matching gateway order, returning
// everything the storefront's payment widget needs to open the payment flow.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	items, err := payload.ResolveItems()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), payload.ResolveUserID(), payload.ResolvePhone(), items, payload.ResolveAddress())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// VerifyPayment validates the gateway callback signature and marks the order
// paid when it checks out.
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	var payload request.PaymentVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.VerifyPayment(c.Request.Context(), payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature, payload.OrderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaidOrder(order))
}

// UpdateStatus advances an order along the fulfilment pipeline.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.AdminStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, payload.ResolveStatus(), payload.ResolveMessage())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhoneNotVerified):
		return pkg.NewDomainErrorSimple("PHONE_NOT_VERIFIED", "Phone number has not been verified", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("SIGNATURE_MISMATCH", "Payment signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Order status can only move forward", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

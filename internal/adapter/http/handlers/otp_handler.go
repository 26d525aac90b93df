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

var errInvalidOtpPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// OtpHandler handles phone verification requests for the storefront.

type OtpHandler struct {
	usecase usecase.IOtpUseCase
}

func NewOtpHandler(uc usecase.IOtpUseCase) *OtpHandler {
	return &OtpHandler{usecase: uc}
}

// RequestOtp generates a verification code and dispatches it over SMS.
func (h *OtpHandler) RequestOtp(c *gin.Context) {
	var payload request.OtpRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOtpPayload.HTTPStatus, errInvalidOtpPayload.ToHTTPError())
		return
	}

	err := h.usecase.RequestOtp(c.Request.Context(), payload.ResolveUserID(), payload.ResolvePhone())
	if err != nil {
		appErr := mapOtpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewOtpRequested(600))
}

// VerifyOtp checks a submitted code against the latest one issued for the
// user's phone and, on success, records the phone as verified.
func (h *OtpHandler) VerifyOtp(c *gin.Context) {
	var payload request.OtpVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOtpPayload.HTTPStatus, errInvalidOtpPayload.ToHTTPError())
		return
	}

	err := h.usecase.VerifyOtp(c.Request.Context(), payload.ResolveUserID(), payload.ResolvePhone(), payload.ResolveCode())
	if err != nil {
		appErr := mapOtpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OtpVerifiedResponse{Verified: true})
}

func mapOtpError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOtpInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Phone number is not valid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOtpRateLimited):
		return pkg.NewDomainErrorSimple("OTP_RATE_LIMITED", "Too many verification requests, try again shortly", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrOtpDispatchFailed):
		return pkg.NewDomainError("OTP_DISPATCH_FAILED", "Could not deliver verification code", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSmsNotConfigured):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "SMS delivery is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOtpNotFound):
		return pkg.NewDomainErrorSimple("OTP_NOT_FOUND", "No verification code found for this phone", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOtpExpired):
		return pkg.NewDomainErrorSimple("OTP_EXPIRED", "Verification code has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrOtpMismatch):
		return pkg.NewDomainErrorSimple("OTP_MISMATCH", "Verification code does not match", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

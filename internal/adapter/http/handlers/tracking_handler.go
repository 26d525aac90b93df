package handlers

import (
	"errors"
	"net/http"

	response "sama-store/internal/adapter/http/dto/response"
	"sama-store/internal/usecase"
	"sama-store/pkg"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the unauthenticated order tracking lookup.

type TrackingHandler struct {
	usecase usecase.IOrderTrackingUseCase
}

func NewTrackingHandler(uc usecase.IOrderTrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// TrackOrder resolves a tracking id to the public order projection plus its
// status timeline.
func (h *TrackingHandler) TrackOrder(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	projection, err := h.usecase.TrackOrder(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	history, err := h.usecase.StatusHistory(c.Request.Context(), projection.ID)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingProjection(projection, history))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

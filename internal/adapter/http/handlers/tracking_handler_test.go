package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sama-store/internal/adapter/http/handlers/mocks"
	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTrackingHandler_TrackOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown tracking id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderTrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/track/:tracking_id", h.TrackOrder)

		uc.EXPECT().TrackOrder(gomock.Any(), "SAMA-ZZZZZZ").Return(usecase.OrderTrackingProjection{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/SAMA-ZZZZZZ", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "ORDER_NOT_FOUND" {
			t.Fatalf("expected ORDER_NOT_FOUND, got %q", body["code"])
		}
	})

	t.Run("found returns projection with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderTrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/track/:tracking_id", h.TrackOrder)

		created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().TrackOrder(gomock.Any(), "sama-abc123").Return(usecase.OrderTrackingProjection{
			ID:         "order-1",
			TrackingID: "SAMA-ABC123",
			Status:     entities.OrderStatusShipped,
			CreatedAt:  created,
			UpdatedAt:  created.Add(time.Hour),
		}, nil)
		uc.EXPECT().StatusHistory(gomock.Any(), "order-1").Return([]entities.OrderStatusHistory{
			{OrderID: "order-1", Status: entities.OrderStatusPaid, Message: "Payment confirmed", CreatedAt: created},
			{OrderID: "order-1", Status: entities.OrderStatusShipped, CreatedAt: created.Add(time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/sama-abc123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			ID         string `json:"id"`
			TrackingID string `json:"tracking_id"`
			Status     string `json:"status"`
			History    []struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			} `json:"history"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.TrackingID != "SAMA-ABC123" || body.Status != "shipped" {
			t.Fatalf("unexpected body %+v", body)
		}
		if len(body.History) != 2 || body.History[0].Message != "Payment confirmed" {
			t.Fatalf("unexpected history %+v", body.History)
		}

		// The public projection must never leak customer details.
		var raw map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		for _, field := range []string{"phone", "items", "shipping_address", "user_id", "gateway_payment_id"} {
			if _, ok := raw[field]; ok {
				t.Fatalf("field %q must not appear in tracking response", field)
			}
		}
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sama-store/internal/adapter/http/handlers/mocks"
	"sama-store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOtpHandler_RequestOtp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/request", h.RequestOtp)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/request", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid phone maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/request", h.RequestOtp)

		uc.EXPECT().RequestOtp(gomock.Any(), "user-1", "12345").Return(usecase.ErrInvalidPhone)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/request", bytes.NewBufferString(`{"user_id":"user-1","phone":"12345"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_PHONE" {
			t.Fatalf("expected INVALID_PHONE, got %q", body["code"])
		}
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/request", h.RequestOtp)

		uc.EXPECT().RequestOtp(gomock.Any(), "user-1", "+919876543210").Return(usecase.ErrOtpRateLimited)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/request", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("dispatch failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/request", h.RequestOtp)

		uc.EXPECT().RequestOtp(gomock.Any(), "user-1", "+919876543210").Return(usecase.ErrOtpDispatchFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/request", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/request", h.RequestOtp)

		uc.EXPECT().RequestOtp(gomock.Any(), "user-1", "+919876543210").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/request", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Message   string `json:"message"`
			ExpiresIn int    `json:"expires_in"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.ExpiresIn != 600 {
			t.Fatalf("expected 600s expiry, got %d", body.ExpiresIn)
		}
	})
}

func TestOtpHandler_VerifyOtp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing code rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/verify", h.VerifyOtp)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/verify", h.VerifyOtp)

		uc.EXPECT().VerifyOtp(gomock.Any(), "user-1", "+919876543210", "123456").Return(usecase.ErrOtpExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210","code":"123456"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/verify", h.VerifyOtp)

		uc.EXPECT().VerifyOtp(gomock.Any(), "user-1", "+919876543210", "000000").Return(usecase.ErrOtpMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210","code":"000000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "OTP_MISMATCH" {
			t.Fatalf("expected OTP_MISMATCH, got %q", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOtpUseCase(ctrl)
		h := NewOtpHandler(uc)

		r := gin.New()
		r.POST("/v1/otp/verify", h.VerifyOtp)

		uc.EXPECT().VerifyOtp(gomock.Any(), "user-1", "+919876543210", "123456").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/otp/verify", bytes.NewBufferString(`{"user_id":"user-1","phone":"+919876543210","code":"123456"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Verified bool `json:"verified"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Verified {
			t.Fatal("expected verified true")
		}
	})
}

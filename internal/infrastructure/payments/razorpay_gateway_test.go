package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGateway(t *testing.T, baseURL string) *RazorpayGateway {
	t.Helper()
	g, err := NewRazorpayGateway("rzp_test_key", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if baseURL != "" {
		g.baseURL = baseURL
	}
	return g
}

func TestNewRazorpayGateway(t *testing.T) {
	if _, err := NewRazorpayGateway("", "secret"); !errors.Is(err, ErrMissingRazorpayCredentials) {
		t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
	}
	if _, err := NewRazorpayGateway("key", ""); !errors.Is(err, ErrMissingRazorpayCredentials) {
		t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
	}
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	t.Run("sends basic auth and amount in paise", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/orders" {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "rzp_test_key" || pass != "secret123" {
				t.Fatalf("bad basic auth %q/%q", user, pass)
			}

			var payload struct {
				Amount   int64  `json:"amount"`
				Currency string `json:"currency"`
				Receipt  string `json:"receipt"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if payload.Amount != 210000 || payload.Currency != "INR" || payload.Receipt != "order-1" {
				t.Fatalf("unexpected payload %+v", payload)
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_rzp1",
				"amount":   210000,
				"currency": "INR",
				"status":   "created",
			})
		}))
		defer srv.Close()

		g := newTestGateway(t, srv.URL)
		order, err := g.CreateOrder(context.Background(), 210000, "INR", "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "order_rzp1" || order.AmountMinor != 210000 || order.Currency != "INR" {
			t.Fatalf("unexpected order %+v", order)
		}
	})

	t.Run("non 2xx status fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		g := newTestGateway(t, srv.URL)
		if _, err := g.CreateOrder(context.Background(), 210000, "INR", "order-1"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("missing order id fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		g := newTestGateway(t, srv.URL)
		if _, err := g.CreateOrder(context.Background(), 210000, "INR", "order-1"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := newTestGateway(t, "")

	sign := func(orderID, paymentID string) string {
		mac := hmac.New(sha256.New, []byte("secret123"))
		mac.Write([]byte(orderID + "|" + paymentID))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("valid signature", func(t *testing.T) {
		if !g.VerifySignature("order_rzp1", "pay_1", sign("order_rzp1", "pay_1")) {
			t.Fatal("expected valid signature to verify")
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		if g.VerifySignature("order_rzp1", "pay_1", sign("order_rzp1", "pay_2")) {
			t.Fatal("expected tampered signature to fail")
		}
	})

	t.Run("garbage signature", func(t *testing.T) {
		if g.VerifySignature("order_rzp1", "pay_1", "not-a-signature") {
			t.Fatal("expected garbage signature to fail")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if g.VerifySignature("order_rzp1", "pay_1", "") {
			t.Fatal("expected empty signature to fail")
		}
	})
}

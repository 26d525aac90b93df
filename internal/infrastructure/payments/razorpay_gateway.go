package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"sama-store/internal/usecase/interfaces"
	"sama-store/internal/util"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")

const defaultRazorpayBaseURL = "https://api.razorpay.com"

// RazorpayGateway talks to the Razorpay Orders API and verifies the
// checkout callback signature.
//
// Signature scheme (Razorpay docs): hex(HMAC-SHA256(key_secret,
// "<order_id>|<payment_id>")) must equal razorpay_signature.

type RazorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrMissingRazorpayCredentials
	}
	return &RazorpayGateway{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    defaultRazorpayBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (interfaces.GatewayOrder, error) {
	body, err := json.Marshal(razorpayOrderRequest{Amount: amountMinor, Currency: currency, Receipt: receipt})
	if err != nil {
		return interfaces.GatewayOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return interfaces.GatewayOrder{}, err
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return interfaces.GatewayOrder{}, fmt.Errorf("razorpay order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		util.Error("razorpay order creation rejected",
			util.Int("status", resp.StatusCode),
			util.String("body", string(snippet)))
		return interfaces.GatewayOrder{}, fmt.Errorf("razorpay order creation failed: status %d", resp.StatusCode)
	}

	var out razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interfaces.GatewayOrder{}, fmt.Errorf("razorpay response decode failed: %w", err)
	}
	if out.ID == "" {
		return interfaces.GatewayOrder{}, errors.New("razorpay response missing order id")
	}

	return interfaces.GatewayOrder{ID: out.ID, AmountMinor: out.Amount, Currency: out.Currency}, nil
}

func (g *RazorpayGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

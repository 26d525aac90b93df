package interfaces

import "context"

// GatewayOrder is the provider-side order created before collecting payment.
// AmountMinor is in the smallest currency unit (paise for INR).
type GatewayOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
}

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// VerifySignature is the sole integrity check protecting the payment callback:
// it recomputes the provider signature from the gateway secret and compares it
// against the one supplied by the client.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	KeyID() string
}

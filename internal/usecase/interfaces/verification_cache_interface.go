package interfaces

import (
	"context"
	"time"
)

// IVerificationCache is the boolean gate between OTP verification and
// checkout: a successful VerifyOtp marks user+phone verified for a bounded
// TTL, and Checkout refuses orders for unverified phones.
type IVerificationCache interface {
	MarkVerified(ctx context.Context, userID, phone string, ttl time.Duration) error
	IsVerified(ctx context.Context, userID, phone string) (bool, error)
}

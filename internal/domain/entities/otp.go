package entities

import "time"

// OtpVerification is one issued phone-verification code.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, sort key created_at
//
// Records are never deleted: a successful verification marks the row consumed
// so the same code cannot be replayed, and expired rows simply stop matching.
type OtpVerification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	Consumed  bool      `json:"consumed"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiredAt reports whether the record is past its expiry at the given time.
func (o OtpVerification) ExpiredAt(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

package interfaces

import (
	"context"
	"time"

	"sama-store/internal/domain/entities"
)

// IOtpRepository abstracts DynamoDB persistence for OtpVerification.
//
// CountByUserSince backs the sliding-window rate limiter: it counts every
// record created for the user at or after the cutoff, consumed or not.

type IOtpRepository interface {
	Create(ctx context.Context, v entities.OtpVerification) (entities.OtpVerification, error)
	LatestByUserPhone(ctx context.Context, userID, phone string) (entities.OtpVerification, error)
	CountByUserSince(ctx context.Context, userID string, since time.Time) (int, error)
	MarkConsumed(ctx context.Context, id string) error
}

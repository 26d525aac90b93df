package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sama-store/internal/usecase/interfaces"
	"sama-store/internal/util"

	"github.com/redis/go-redis/v9"
)

const verifiedPhonePrefix = "verified_phone:"

// VerificationRedisCache stores the "phone verified" gate as a TTL-bounded
// Redis key per user+phone pair. Redis expiry does the invalidation; there is
// no explicit un-verify path.

type VerificationRedisCache struct {
	client *redis.Client
}

var _ interfaces.IVerificationCache = (*VerificationRedisCache)(nil)

func NewVerificationRedisCache(client *redis.Client) *VerificationRedisCache {
	return &VerificationRedisCache{client: client}
}

func (c *VerificationRedisCache) MarkVerified(ctx context.Context, userID, phone string, ttl time.Duration) error {
	key := verifiedKey(userID, phone)
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		util.Error("failed to mark phone verified",
			util.String("user_id", userID),
			util.ErrorField(err))
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}
	return nil
}

func (c *VerificationRedisCache) IsVerified(ctx context.Context, userID, phone string) (bool, error) {
	_, err := c.client.Get(ctx, verifiedKey(userID, phone)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check phone verification: %w", err)
	}
	return true, nil
}

func verifiedKey(userID, phone string) string {
	return verifiedPhonePrefix + userID + ":" + phone
}

package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"sama-store/internal/util"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client from REDIS_URL (redis:// or rediss://)
// and verifies connectivity with a ping.
func ConnectRedis() (*redis.Client, error) {
	rawURL := os.Getenv("REDIS_URL")
	if rawURL == "" {
		rawURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	util.Info("redis client initialized", util.String("addr", opts.Addr), util.Int("db", opts.DB))
	return client, nil
}

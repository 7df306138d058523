package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter answers whether an action identified by key may proceed.
// Backing it with Redis keeps the limit shared across instances instead of
// living in a per-process map.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type fixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a fixed-window limiter allowing limit calls per
// window for each key
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) RateLimiter {
	return &fixedWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *fixedWindowLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (l *fixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// first hit in the window sets the expiry
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= l.limit, nil
}

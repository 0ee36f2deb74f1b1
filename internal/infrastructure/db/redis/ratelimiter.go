package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts hits per key in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<client_ip>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit hits per window.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, window: window, limit: limit}
}

// Allow records one hit for scope/ip and reports whether it is within the
// limit for the current window.
func (l *RateLimiter) Allow(ctx context.Context, scope, ip string) (bool, error) {
	key := l.key(scope, ip, time.Now())

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(scope, ip string, now time.Time) string {
	window := now.Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, ip, window)
}

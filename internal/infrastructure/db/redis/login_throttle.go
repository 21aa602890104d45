package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle tracks failed login attempts per email in Redis.
// Key format: loginfail:<email>, expiring after the configured window so a
// quiet account unlocks itself.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, maxFailures int64, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, maxFailures: maxFailures, window: window}
}

// Allow reports whether the email is still under the failure threshold.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return false, fmt.Errorf("login throttle get: %w", err)
	}
	return n < t.maxFailures, nil
}

// RecordFailure bumps the failure counter, starting the expiry window on the
// first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("login throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "loginfail:" + email
}

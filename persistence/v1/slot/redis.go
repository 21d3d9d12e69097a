package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis keeps the slot as a plain string key.
type Redis struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

// NewRedis wraps client. A zero ttl keeps the key forever.
func NewRedis(client *redis.Client, ttl, timeout time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl, timeout: timeout}
}

func (r *Redis) Read(ctx context.Context, key string) (string, error) {
	rCtx, rCancel := withTimeout(ctx, r.timeout)
	defer rCancel()

	get, err := r.client.Get(rCtx, key).Result()
	if err == redis.Nil {
		return "", ErrAbsent
	}
	if err != nil {
		return "", fmt.Errorf("failed to get slot %s from redis: %w", key, err)
	}
	return get, nil
}

func (r *Redis) Write(ctx context.Context, key, value string) error {
	rCtx, rCancel := withTimeout(ctx, r.timeout)
	defer rCancel()

	if err := r.client.Set(rCtx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set slot %s into redis: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

package mirror

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
)

//go:generate mockgen -source=redis.go -destination=../../mocks/repository/mirror/mock.go -package=mocks
type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Redis keeps the slot under a single redis key.
type Redis struct {
	cache    cache
	key      string
	strategy retry.Strategy
}

// NewRedis creates a redis-backed slot stored under key.
func NewRedis(c cache, key string, strategy retry.Strategy) *Redis {
	return &Redis{cache: c, key: key, strategy: strategy}
}

// Load reads the slot. A missing key is an empty slot.
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	value, err := r.cache.GetWithRetry(ctx, r.strategy, r.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}

		return nil, fmt.Errorf("get slot %s: %w", r.key, err)
	}

	if value == "" {
		return nil, ErrSlotEmpty
	}

	return []byte(value), nil
}

// Save overwrites the key with data.
func (r *Redis) Save(ctx context.Context, data []byte) error {
	if err := r.cache.SetWithRetry(ctx, r.strategy, r.key, string(data)); err != nil {
		return fmt.Errorf("set slot %s: %w", r.key, err)
	}

	return nil
}

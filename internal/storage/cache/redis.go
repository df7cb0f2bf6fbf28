// Package cache provides the short-TTL response cache for hot upstream
// reads. Misses and backend failures look identical to callers: a cold
// cache only costs a refetch, never an error branch.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
)

// Redis implements the Cache contract on a Redis backend.
type Redis struct {
	client *redis.Client
	logger *common.Logger
}

// NewRedis creates a Redis-backed cache.
func NewRedis(addr string, logger *common.Logger) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// Get returns the cached value, or ("", false) on miss or backend failure.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return "", false
	}
	return val, true
}

// Set stores a value with the given TTL. Failures are logged and dropped.
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Debug().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Delete removes a key. Failures are logged and dropped.
func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Debug().Err(err).Str("key", key).Msg("Cache delete failed")
	}
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ interfaces.Cache = (*Redis)(nil)

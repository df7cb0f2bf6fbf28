package interfaces

import (
	"context"
	"time"
)

// Cache is a short-TTL response cache for hot upstream reads (the rate
// catalog, the dashboard summary). Implementations must treat misses and
// backend failures identically: a (_, false) result, never an error the
// caller has to branch on. The upstream API remains the source of truth;
// a cold or unreachable cache only costs a refetch.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Package cache provides the short-TTL audit-result cache. Implementations
// are injected into the handlers so the in-memory default can be swapped for
// Redis without touching the scoring path.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss reports that a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache stores serialized audit results keyed by place identifier.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

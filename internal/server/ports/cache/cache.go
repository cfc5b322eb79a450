// Package cache defines the caching port of the server.
package cache

import (
	"context"
	"time"
)

// Cache is a string key-value cache with per-key TTL. A Get miss returns an
// empty string and no error.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

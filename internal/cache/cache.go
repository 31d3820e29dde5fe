package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a key/value store with per-entry expiry.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	Redis   *RedisOptions
}

// NewCache builds the backend named in opts.
func NewCache[V any](opts Options) (Cache[V], error) {
	switch opts.Backend {
	case RedisBackend:
		if opts.Redis == nil {
			return nil, errors.New("cache: redis backend needs redis options")
		}
		return NewRedisCache[V](opts.Redis), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", opts.Backend)
	}
}

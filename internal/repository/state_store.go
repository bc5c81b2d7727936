package repository

import (
	"context"
	"time"
)

// StateStore is a small key-value store with per-key TTL used for lookup caching.
// Get returns (nil, nil) on a miss.
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss means the key is absent or expired. Callers fall back to the store.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a string key/value store with per-entry expiry. A zero expiration keeps the entry forever.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Ping(ctx context.Context) error
}

package cache

import (
	"context"
	"time"
)

// Service is a byte-oriented cache with TTL. Callers marshal their own
// payloads; the cache never inspects them.
type Service interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) (b []byte, ok bool, err error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or its TTL has lapsed.
var ErrCacheMiss = errors.New("cache miss")

// HotListCache is a best-effort keyed store with TTL-based eviction, used for
// hot-list freshness markers. It is injected so tests can substitute an
// in-memory fake while production wires the shared badger-backed cache.
// Values are small markers, not canonical data; losing them is harmless.
type HotListCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

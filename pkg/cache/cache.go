// Package cache provides response caching for the layoutsmith HTTP API.
//
// The translation pipeline itself is pure and never caches; caching lives
// strictly at the process boundary, keyed by a hash of the raw input text.
// Three backends are provided: a file cache for single-host deployments, a
// Redis cache for shared deployments, and a null cache that disables caching.
package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLCode is the default time-to-live for cached rendered code. The format
// is deterministic, so entries never go stale; the TTL only bounds disk and
// memory growth.
const TTLCode = 24 * time.Hour

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. Only a zero TTL means no
	// expiration; a negative TTL stores an already-expired entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// CodeKey builds the cache key for a rendered translation of the given raw
// example text.
func CodeKey(input string) string {
	return fmt.Sprintf("code:%s", Hash([]byte(input)))
}

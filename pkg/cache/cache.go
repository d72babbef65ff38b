// Package cache stores expensive simulation results between CLI runs.
//
// The sample command can take a while for large runs, so its aggregates are
// cached under a key derived from the run parameters. [FileCache] persists
// entries as JSON files with optional expiration; [NullCache] disables
// caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiration.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

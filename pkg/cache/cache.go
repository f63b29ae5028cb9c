// Package cache stores packing results between runs.
//
// Packing is deterministic: the same ordered batch of sprite sizes with the
// same padding and max width always yields the same placements. Results
// can therefore be keyed by a hash of those inputs and reused when a
// directory is re-stitched without changes to sprite sizes.
package cache

import (
	"context"
	"time"
)

// TTLPack is how long a cached packing result stays valid.
const TTLPack = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

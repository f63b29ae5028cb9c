package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/spritestitch/pkg/sprite"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// PackKey returns the cache key for packing sprites with the given padding
// and max width. Sprite order is part of the key because packing is
// order-sensitive.
func PackKey(sprites []sprite.Descriptor, padding, maxWidth int) string {
	return hashKey("pack", sprites, padding, maxWidth)
}

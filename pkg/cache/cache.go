// Package cache provides the render cache used to skip repeated export work.
//
// Raster export of the same scene to the same format is deterministic, so the
// encoded bytes can be cached keyed by a hash of the scene content plus the
// output parameters. Three backends are provided: a no-op cache, a file cache
// for CLI usage, and a redis cache for server deployments.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RenderKey builds the cache key for one rendered artifact. contentHash is
// the [Hash] of the scene's canonical encoding; format and scale are the
// export parameters that change the output bytes.
func RenderKey(contentHash, format string, scale float64) string {
	return fmt.Sprintf("render:%s:%s:%.2f", contentHash, format, scale)
}

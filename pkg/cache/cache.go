// Package cache stores rendered drawing artifacts between runs.
//
// Rendering a block drawing is deterministic: the same spec, canvas and
// layout policy always produce the same bytes. That makes artifacts safe
// to cache on content-derived keys. The CLI uses a FileCache under the
// XDG cache directory; tests and callers that want rendering on every
// run use a NullCache.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid. Renders are
// deterministic, so the TTL only bounds disk growth.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores byte blobs under string keys with optional expiry.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for one rendered artifact. The spec
// hash covers the part geometry and features; format and canvas size
// cover everything else that changes the output bytes.
func ArtifactKey(specHash, format string, width, height float64) string {
	return hashKey("artifact", specHash, format, width, height)
}

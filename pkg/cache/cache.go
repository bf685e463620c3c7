// Package cache provides content-addressed caching of rendered artifacts.
//
// Rendering tens of thousands of graphs through Graphviz dominates a full
// build. Because SVG output is a pure function of the DOT source, render
// results can be cached keyed by a hash of the DOT text: re-running a
// build over an unchanged index re-uses every artifact, and any change to
// an entry's relations changes its DOT and therefore its key.
//
// Two implementations are provided: [FileCache] for real runs and
// [NullCache] when caching is disabled (--refresh, tests).
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid. Renders are
// deterministic, so entries only expire to bound disk usage.
const TTLArtifact = 30 * 24 * time.Hour

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact from the output
// format and the hash of the source description (e.g. DOT text).
func ArtifactKey(format, srcHash string) string {
	return "artifact:" + format + ":" + srcHash
}

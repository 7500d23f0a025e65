// Package cache provides caching for rendered wheel artifacts.
//
// The layout engine itself is pure and recomputes everything per call;
// memoization happens out here. The CLI caches rendered rings and whole
// wheels on disk, the server can use Redis for multi-instance
// deployments, and NullCache disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// RingKeyOpts captures everything that changes a generated ring.
type RingKeyOpts struct {
	Inner  float64
	Outer  float64
	Offset float64
}

// WheelKeyOpts captures everything that changes a rendered wheel beyond
// its manifest hash.
type WheelKeyOpts struct {
	Format string
}

// Keyer builds cache keys for the pipeline's stages.
type Keyer interface {
	// TableKey keys a loaded knowledge table by its origin.
	TableKey(origin string) string

	// RingKey keys one generated ring by table hash, ring name, and
	// geometry.
	RingKey(tableHash, ring string, opts RingKeyOpts) string

	// WheelKey keys a fully rendered wheel by manifest hash and format.
	WheelKey(manifestHash string, opts WheelKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TableKey implements Keyer.
func (k *DefaultKeyer) TableKey(origin string) string {
	return "table:" + origin
}

// RingKey implements Keyer.
func (k *DefaultKeyer) RingKey(tableHash, ring string, opts RingKeyOpts) string {
	return hashKey("ring", tableHash, ring, opts)
}

// WheelKey implements Keyer.
func (k *DefaultKeyer) WheelKey(manifestHash string, opts WheelKeyOpts) string {
	return hashKey("wheel", manifestHash, opts)
}

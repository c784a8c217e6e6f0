// Package cache stores pipeline intermediates so repeated runs over the
// same dataset skip work.
//
// Three artifacts are cached, each keyed by a content hash of its input
// plus the options that shape it:
//
//   - dataset: the parsed records of a CSV file or collection
//   - layout: the exported partition layout of a dataset
//   - artifact: a rendered output (SVG, PNG, PDF, JSON) of a layout
//
// Backends are interchangeable behind [Cache]: [FileCache] for the CLI,
// [RedisCache] for a shared cache, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// Entry lifetimes.
const (
	TTLDataset  = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key prefixes, also reported as the key type to cache hooks.
const (
	KeyTypeDataset  = "dataset"
	KeyTypeLayout   = "layout"
	KeyTypeArtifact = "artifact"
)

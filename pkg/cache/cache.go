// Package cache stores rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: sharded JSON entries under a local directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
//
// # Keys
//
// Keys are produced by a [Keyer] so the same record and options always map
// to the same entry. Only deterministic outputs are cached: a render with a
// time-seeded palette is never stored.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(input), cache.ArtifactKeyOpts{Format: "svg", Seed: 7})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	HoverTTL    = 24 * time.Hour
)

// Package cache stores codec results keyed by the content they were
// computed from.
//
// # Backends
//
//   - [FileCache]: one file per entry under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance for several workers
//   - [NullCache]: stores nothing, for disabling the cache
//
// # Keys
//
// A [Keyer] turns the hash of an input document into a cache key. Keys
// include the wire format version, so entries written by an older encoder
// are never returned after the format changes. [ScopedKeyer] prefixes keys
// to keep several tenants apart on one backend.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.EncodeKey(cache.Hash(input))
//	if data, ok, err := c.Get(ctx, key); err == nil && ok {
//	    // use data
//	}
package cache

import (
	"context"
	"time"
)

// FormatVersion is the version of the sparse wire format produced by the
// codec. Bump it whenever encoder output for the same input changes.
const FormatVersion = 1

// DefaultTTL is the lifetime of cached codec results.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (ok == false) and not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from input content hashes.
type Keyer interface {
	// EncodeKey is the key for the sparse encoding of a dense network.
	EncodeKey(networkHash string) string

	// DecodeKey is the key for the dense decoding of a sparse network.
	DecodeKey(sparseHash string) string
}

// DefaultKeyer builds keys of the form "<kind>:<sha256>" where the hash
// covers the format version and the input hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// EncodeKey implements Keyer.
func (DefaultKeyer) EncodeKey(networkHash string) string {
	return hashKey("encode", FormatVersion, networkHash)
}

// DecodeKey implements Keyer.
func (DefaultKeyer) DecodeKey(sparseHash string) string {
	return hashKey("decode", FormatVersion, sparseHash)
}

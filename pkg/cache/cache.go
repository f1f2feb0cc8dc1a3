// Package cache stores expensive query results between runs.
//
// Path enumeration grows factorially with the size of a frequency class, so
// the pipeline keeps enumerated paths keyed by the map content and the query.
// A changed map produces a different key, so entries never go stale; the TTL
// only bounds disk usage.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [NullCache]: stores nothing (--no-cache)
//
// # Keys
//
// A [Keyer] derives keys from a map hash and query options. [NewScopedKeyer]
// prefixes every key, which the CLI uses to separate entries written by
// different builds.
package cache

import (
	"context"
	"time"
)

// TTLPaths is how long enumerated paths are kept.
const TTLPaths = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// PathsKeyOpts identifies a path enumeration query.
type PathsKeyOpts struct {
	FromX, FromY int
	ToX, ToY     int
	Limit        int
}

// Keyer derives cache keys.
type Keyer interface {
	PathsKey(mapHash string, opts PathsKeyOpts) string
}

// DefaultKeyer hashes the map hash and the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PathsKey returns the key for a path enumeration on the map with mapHash.
func (DefaultKeyer) PathsKey(mapHash string, opts PathsKeyOpts) string {
	return pathsKey(mapHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PathsKey generates a prefixed key for path caching.
func (k *ScopedKeyer) PathsKey(mapHash string, opts PathsKeyOpts) string {
	return k.prefix + k.inner.PathsKey(mapHash, opts)
}

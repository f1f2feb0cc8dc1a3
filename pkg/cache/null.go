package cache

import (
	"context"
	"time"
)

// NullCache stores nothing, so every path query is enumerated afresh. The
// CLI swaps it in for --no-cache; a Runner built without a cache uses it
// too.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that never hits.
func NewNullCache() Cache { return &NullCache{} }

// Get reports a miss for every path-cache key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set drops the entry.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about map loading and graph queries.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the graph packages stay
// free of logging and metrics imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    observability.SetQueryHooks(&myQueryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Query().OnQueryStart(ctx, observability.QueryDFS)
//	// ... run the traversal ...
//	observability.Query().OnQueryComplete(ctx, observability.QueryDFS, len(order), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Query kinds reported to QueryHooks.
const (
	QueryInterference  = "interference"
	QueryDFS           = "dfs"
	QueryBFS           = "bfs"
	QueryPaths         = "paths"
	QueryIntersections = "intersections"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from map loading.
type LoadHooks interface {
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, antennas, edges int, duration time.Duration, err error)
	// OnMapCreated records that a missing map was replaced by the default map.
	OnMapCreated(ctx context.Context, path string)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from graph queries.
type QueryHooks interface {
	OnQueryStart(ctx context.Context, kind string)
	// OnQueryComplete reports the number of results (visited antennas, paths,
	// intersections or interference cells).
	OnQueryComplete(ctx context.Context, kind string, results int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoadStart(context.Context, string) {}
func (NoopLoadHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopLoadHooks) OnMapCreated(context.Context, string) {}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQueryStart(context.Context, string)                              {}
func (NoopQueryHooks) OnQueryComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Fan-out
// =============================================================================

// MultiLoadHooks forwards every event to each of its hooks in order.
type MultiLoadHooks []LoadHooks

func (m MultiLoadHooks) OnLoadStart(ctx context.Context, path string) {
	for _, h := range m {
		h.OnLoadStart(ctx, path)
	}
}

func (m MultiLoadHooks) OnLoadComplete(ctx context.Context, path string, antennas, edges int, d time.Duration, err error) {
	for _, h := range m {
		h.OnLoadComplete(ctx, path, antennas, edges, d, err)
	}
}

func (m MultiLoadHooks) OnMapCreated(ctx context.Context, path string) {
	for _, h := range m {
		h.OnMapCreated(ctx, path)
	}
}

// MultiQueryHooks forwards every event to each of its hooks in order.
type MultiQueryHooks []QueryHooks

func (m MultiQueryHooks) OnQueryStart(ctx context.Context, kind string) {
	for _, h := range m {
		h.OnQueryStart(ctx, kind)
	}
}

func (m MultiQueryHooks) OnQueryComplete(ctx context.Context, kind string, results int, d time.Duration, err error) {
	for _, h := range m {
		h.OnQueryComplete(ctx, kind, results, d, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks  LoadHooks  = NoopLoadHooks{}
	queryHooks QueryHooks = NoopQueryHooks{}
	hooksMu    sync.RWMutex
)

// SetLoadHooks registers custom load hooks.
// This should be called once at application startup before any map is loaded.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any query runs.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
	queryHooks = NoopQueryHooks{}
}

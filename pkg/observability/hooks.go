// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about codec runs, cache operations, and tool calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the codec packages
// never import a metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCodecHooks(&myCodecHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Codec().OnEncodeStart(ctx, n.VertexCount(), n.SegmentCount())
//	// ... encode ...
//	observability.Codec().OnEncodeComplete(ctx, len(out), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Codec Hooks
// =============================================================================

// CodecHooks receives events from encode and decode runs.
type CodecHooks interface {
	// Encode events
	OnEncodeStart(ctx context.Context, vertexCount, segmentCount int)
	OnEncodeComplete(ctx context.Context, sparseBytes int, duration time.Duration, err error)

	// Decode events
	OnDecodeStart(ctx context.Context, sparseBytes int)
	OnDecodeComplete(ctx context.Context, vertexCount, segmentCount int, duration time.Duration, err error)

	// OnHandleConflict records a vertex whose handles could not be
	// represented exactly.
	OnHandleConflict(ctx context.Context, message string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Tool Hooks
// =============================================================================

// ToolHooks receives events from tool envelope handling.
type ToolHooks interface {
	// OnToolCall records an incoming tool request.
	OnToolCall(ctx context.Context, id, tool string)

	// OnToolResult records the response to a tool request. code is empty
	// on success.
	OnToolResult(ctx context.Context, id, tool string, ok bool, code string, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnEncodeStart(context.Context, int, int)                          {}
func (NoopCodecHooks) OnEncodeComplete(context.Context, int, time.Duration, error)      {}
func (NoopCodecHooks) OnDecodeStart(context.Context, int)                               {}
func (NoopCodecHooks) OnDecodeComplete(context.Context, int, int, time.Duration, error) {}
func (NoopCodecHooks) OnHandleConflict(context.Context, string)                         {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopToolHooks is a no-op implementation of ToolHooks.
type NoopToolHooks struct{}

func (NoopToolHooks) OnToolCall(context.Context, string, string)                                 {}
func (NoopToolHooks) OnToolResult(context.Context, string, string, bool, string, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	codecHooks CodecHooks = NoopCodecHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	toolHooks  ToolHooks  = NoopToolHooks{}
	hooksMu    sync.RWMutex
)

// SetCodecHooks registers custom codec hooks.
// This should be called once at application startup before any codec runs.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetToolHooks registers custom tool hooks.
// This should be called once at application startup before any tool calls.
func SetToolHooks(h ToolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		toolHooks = h
	}
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Tool returns the registered tool hooks.
func Tool() ToolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return toolHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	codecHooks = NoopCodecHooks{}
	cacheHooks = NoopCacheHooks{}
	toolHooks = NoopToolHooks{}
}

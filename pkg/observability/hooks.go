// Package observability provides hooks for metrics and tracing.
//
// Consumers can register hooks at startup to receive events about stitch
// and unstitch runs and about the layout cache, without the stitch package
// depending on any particular metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStitchHooks(&myStitchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Stitch().OnStitchStart(ctx, len(sprites))
//	// ... pack and compose ...
//	observability.Stitch().OnStitchComplete(ctx, len(sprites), w, h, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Stitch Hooks
// =============================================================================

// StitchHooks receives events from the stitch coordinator.
type StitchHooks interface {
	OnStitchStart(ctx context.Context, sprites int)
	OnStitchComplete(ctx context.Context, sprites, width, height int, duration time.Duration, err error)

	OnUnstitchStart(ctx context.Context, atlasPath string)
	OnUnstitchComplete(ctx context.Context, written, failed int, duration time.Duration, err error)
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
// No-op Implementations
// =============================================================================

// NoopStitchHooks is a no-op implementation of StitchHooks.
type NoopStitchHooks struct{}

func (NoopStitchHooks) OnStitchStart(context.Context, int)                                  {}
func (NoopStitchHooks) OnStitchComplete(context.Context, int, int, int, time.Duration, error) {}
func (NoopStitchHooks) OnUnstitchStart(context.Context, string)                             {}
func (NoopStitchHooks) OnUnstitchComplete(context.Context, int, int, time.Duration, error)  {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stitchHooks StitchHooks = NoopStitchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetStitchHooks registers custom stitch hooks. Nil is ignored.
func SetStitchHooks(h StitchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stitchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Stitch returns the registered stitch hooks.
func Stitch() StitchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stitchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stitchHooks = NoopStitchHooks{}
	cacheHooks = NoopCacheHooks{}
}

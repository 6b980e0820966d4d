// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about frame composition and surface lifecycle.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFrameHooks(&myFrameHooks{})
//	    observability.SetSurfaceHooks(&mySurfaceHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Frame().OnRenderStart(width, height)
//	// ... compose the canvas ...
//	observability.Frame().OnRenderComplete(width, height, duration)
//
// Hook methods run on the frame goroutine; implementations that need to
// block should hand the event off instead.
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Frame Hooks
// =============================================================================

// FrameHooks receives events from the per-frame pipeline.
type FrameHooks interface {
	// OnDrain records how many queued input events one tick applied.
	OnDrain(applied int)

	// Render events
	OnRenderStart(width, height int)
	OnRenderComplete(width, height int, duration time.Duration)

	// OnPresentComplete records a surface present, failed or not.
	OnPresentComplete(duration time.Duration, err error)
}

// =============================================================================
// Surface Hooks
// =============================================================================

// SurfaceHooks receives window lifecycle events.
type SurfaceHooks interface {
	// OnOpen records a window being opened.
	OnOpen(name string, width, height int)

	// OnResize records a window resize after a layout change.
	OnResize(name string, width, height int)

	// OnClose records a window being destroyed.
	OnClose(name string)

	// OnLost records the surface becoming unusable (hidden or present
	// failure) before the window was asked to close.
	OnLost(name, reason string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnDrain(int)                              {}
func (NoopFrameHooks) OnRenderStart(int, int)                   {}
func (NoopFrameHooks) OnRenderComplete(int, int, time.Duration) {}
func (NoopFrameHooks) OnPresentComplete(time.Duration, error)   {}

// NoopSurfaceHooks is a no-op implementation of SurfaceHooks.
type NoopSurfaceHooks struct{}

func (NoopSurfaceHooks) OnOpen(string, int, int)   {}
func (NoopSurfaceHooks) OnResize(string, int, int) {}
func (NoopSurfaceHooks) OnClose(string)            {}
func (NoopSurfaceHooks) OnLost(string, string)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	frameHooks   FrameHooks   = NoopFrameHooks{}
	surfaceHooks SurfaceHooks = NoopSurfaceHooks{}
	hooksMu      sync.RWMutex
)

// SetFrameHooks registers custom frame hooks.
// This should be called once at application startup before any frames render.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// SetSurfaceHooks registers custom surface hooks.
// This should be called once at application startup before any window opens.
func SetSurfaceHooks(h SurfaceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		surfaceHooks = h
	}
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Surface returns the registered surface hooks.
func Surface() SurfaceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return surfaceHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	frameHooks = NoopFrameHooks{}
	surfaceHooks = NoopSurfaceHooks{}
}

// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about render-pass execution and drawing quality.
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
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnLayoutStart(ctx, partID, featureCount)
//	// ... compute layout ...
//	observability.Render().OnLayoutComplete(ctx, partID, viewCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the drawing render pipeline.
type RenderHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, partID string, featureCount int)
	OnLayoutComplete(ctx context.Context, partID string, viewCount int, duration time.Duration, err error)

	// Draw events
	OnDrawStart(ctx context.Context, partID string)
	OnDrawComplete(ctx context.Context, partID string, duration time.Duration, err error)

	// Export events
	OnExportStart(ctx context.Context, formats []string)
	OnExportComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Quality Hooks
// =============================================================================

// QualityHooks receives drawing-quality diagnostics. These events never
// indicate failure; they exist so quality review can spot degraded output.
type QualityHooks interface {
	// OnLabelFallback records that a label exhausted every candidate
	// position and was placed overlapping existing labels.
	OnLabelFallback(ctx context.Context, label string, candidateCount int)

	// OnScaleClamped records that a view's computed scale hit the
	// configured clamp band.
	OnScaleClamped(ctx context.Context, view string, raw, clamped float64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnLayoutStart(context.Context, string, int) {}
func (NoopRenderHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnDrawStart(context.Context, string)                              {}
func (NoopRenderHooks) OnDrawComplete(context.Context, string, time.Duration, error)     {}
func (NoopRenderHooks) OnExportStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnExportComplete(context.Context, []string, time.Duration, error) {}

// NoopQualityHooks is a no-op implementation of QualityHooks.
type NoopQualityHooks struct{}

func (NoopQualityHooks) OnLabelFallback(context.Context, string, int)             {}
func (NoopQualityHooks) OnScaleClamped(context.Context, string, float64, float64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks  RenderHooks  = NoopRenderHooks{}
	qualityHooks QualityHooks = NoopQualityHooks{}
	hooksMu      sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render passes.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetQualityHooks registers custom quality hooks.
// This should be called once at application startup before any render passes.
func SetQualityHooks(h QualityHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		qualityHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Quality returns the registered quality hooks.
func Quality() QualityHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return qualityHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	qualityHooks = NoopQualityHooks{}
}

// Package observability provides hooks for metrics, tracing, and logging.
//
// The graph build emits events through hook interfaces with no-op defaults,
// so the core packages stay free of any particular metrics backend. An
// application registers its implementation once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... read the table ...
//	observability.Pipeline().OnLoadComplete(ctx, path, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the graph build pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, rows int, duration time.Duration, err error)

	// Build events
	OnBuildStart(ctx context.Context, rows int)
	OnBuildComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)
}

// =============================================================================
// Exposure Hooks
// =============================================================================

// ExposureHooks receives events from the exposure detector.
type ExposureHooks interface {
	// OnExposed records a resource found reachable from the Internet.
	OnExposed(ctx context.Context, name, resourceType, rule string)

	// OnSkipped records rows whose properties could not be evaluated.
	OnSkipped(ctx context.Context, count int)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from graph consumers writing output.
type ExportHooks interface {
	OnExport(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnBuildStart(context.Context, int)                                 {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration, error)   {}

// NoopExposureHooks is a no-op implementation of ExposureHooks.
type NoopExposureHooks struct{}

func (NoopExposureHooks) OnExposed(context.Context, string, string, string) {}
func (NoopExposureHooks) OnSkipped(context.Context, int)                    {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExport(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	exposureHooks ExposureHooks = NoopExposureHooks{}
	exportHooks   ExportHooks   = NoopExportHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any build.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetExposureHooks registers custom exposure hooks.
func SetExposureHooks(h ExposureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exposureHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Exposure returns the registered exposure hooks.
func Exposure() ExposureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exposureHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	exposureHooks = NoopExposureHooks{}
	exportHooks = NoopExportHooks{}
}

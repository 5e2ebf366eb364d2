// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about descriptor translation and project builds.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the processor and
// builder packages stay free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTranslationHooks(&myTranslationHooks{})
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Translation().OnTranslateStart(original)
//	// ... read and render ...
//	observability.Translation().OnTranslateComplete(original, companion, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Translation Hooks
// =============================================================================

// TranslationHooks receives events from the descriptor read pipeline.
type TranslationHooks interface {
	// OnLocate records a directory lookup and the descriptor it resolved to.
	OnLocate(dir, descriptor string, translated bool)

	// Translate events
	OnTranslateStart(original string)
	OnTranslateComplete(original, companion string, duration time.Duration, err error)

	// OnDump records a dump file write. written is false when the existing
	// content was identical.
	OnDump(target string, written bool, err error)
}

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from project builds.
type BuildHooks interface {
	OnBuildStart(entry string)
	OnBuildComplete(entry string, projects int, duration time.Duration, err error)

	// OnRestore records a result whose descriptor was switched from the
	// companion back to the original file.
	OnRestore(companion, original string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTranslationHooks is a no-op implementation of TranslationHooks.
type NoopTranslationHooks struct{}

func (NoopTranslationHooks) OnLocate(string, string, bool)                            {}
func (NoopTranslationHooks) OnTranslateStart(string)                                  {}
func (NoopTranslationHooks) OnTranslateComplete(string, string, time.Duration, error) {}
func (NoopTranslationHooks) OnDump(string, bool, error)                               {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(string)                               {}
func (NoopBuildHooks) OnBuildComplete(string, int, time.Duration, error) {}
func (NoopBuildHooks) OnRestore(string, string)                          {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	translationHooks TranslationHooks = NoopTranslationHooks{}
	buildHooks       BuildHooks       = NoopBuildHooks{}
	hooksMu          sync.RWMutex
)

// SetTranslationHooks registers custom translation hooks.
// This should be called once at application startup before any reads.
func SetTranslationHooks(h TranslationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		translationHooks = h
	}
}

// SetBuildHooks registers custom build hooks.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Translation returns the registered translation hooks.
func Translation() TranslationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return translationHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	translationHooks = NoopTranslationHooks{}
	buildHooks = NoopBuildHooks{}
}

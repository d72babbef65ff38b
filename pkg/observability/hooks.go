// Package observability provides hooks for instrumenting board generation.
//
// The package uses a simple hooks pattern: a hook interface with a no-op
// default implementation, and a registration function called by main or
// the CLI at startup. Library packages emit events without depending on
// any logging or metrics backend, which keeps the core free of
// observability frameworks and avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetGenerationHooks(&myHooks{})
//
// The board package calls hooks during layout:
//
//	observability.Generation().OnTrialComplete(trial, accepted, rejectedBy)
package observability

import "sync"

// GenerationHooks receives events from board construction and layout.
type GenerationHooks interface {
	// OnBuildComplete fires once after a board topology is constructed
	// and its derived orderings are in place.
	OnBuildComplete(variant string, terrainTiles, portTiles int)

	// OnTrialComplete fires after each assignment pass has been checked
	// against the validators. rejectedBy is the index of the first
	// validator that rejected the layout, or -1 when accepted.
	OnTrialComplete(trial int, accepted bool, rejectedBy int)

	// OnLayoutComplete fires when the layout loop exits, with the total
	// trial count and the terminal error (nil on acceptance).
	OnLayoutComplete(trials int, err error)
}

// NoopGenerationHooks is a GenerationHooks implementation that does
// nothing. Embed it to implement only the events you care about.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnBuildComplete(string, int, int) {}
func (NoopGenerationHooks) OnTrialComplete(int, bool, int)   {}
func (NoopGenerationHooks) OnLayoutComplete(int, error)      {}

var (
	mu         sync.RWMutex
	generation GenerationHooks = NoopGenerationHooks{}
)

// SetGenerationHooks registers the hooks receiving generation events.
// Passing nil restores the no-op default. Safe for concurrent use, though
// registration is expected to happen once at startup.
func SetGenerationHooks(h GenerationHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		generation = NoopGenerationHooks{}
		return
	}
	generation = h
}

// Generation returns the currently registered generation hooks, never nil.
func Generation() GenerationHooks {
	mu.RLock()
	defer mu.RUnlock()
	return generation
}

package manager

import (
	"sync/atomic"

	"snake-game/game/types"
)

// StateManager publishes immutable GameState snapshots from the single
// writer (the engine tick) to any number of concurrent readers. The whole
// snapshot is replaced through one atomic pointer store, so a reader sees
// either the fully-old or the fully-new state, never a mix, and neither side
// ever blocks the other.
type StateManager struct {
	current atomic.Pointer[types.GameState]
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// Publish installs state as the current snapshot. Single-writer: only the
// engine tick calls this.
func (sm *StateManager) Publish(state *types.GameState) {
	sm.current.Store(state)
}

// Current returns the latest published snapshot. Safe from any goroutine at
// any cadence; the returned state never changes after publication. Nil until
// the first Publish.
func (sm *StateManager) Current() *types.GameState {
	return sm.current.Load()
}

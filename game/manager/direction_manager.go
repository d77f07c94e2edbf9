package manager

import (
	"sync/atomic"

	"snake-game/game/types"
)

// DirectionManager is the single point where asynchronous input meets the
// single-threaded tick. It holds the committed direction (owned by the
// simulation) and a pending slot (written by input producers). Both live in
// atomics so SetInput from an input goroutine never blocks or tears against
// ProcessInput on the tick side. The pending slot is last-write-wins by
// design: several key presses inside one tick interval only need to affect
// the next single step, so no queue.
type DirectionManager struct {
	committed atomic.Int32
	pending   atomic.Int32 // DirNone when empty
}

// NewDirectionManager starts with the given committed direction and an empty
// pending slot.
func NewDirectionManager(initial types.Direction) *DirectionManager {
	dm := &DirectionManager{}
	dm.committed.Store(int32(initial))
	return dm
}

// SetInput requests a direction change. Safe to call from any goroutine.
// A request that exactly reverses the committed direction is dropped
// silently; that is a normal user mistake, not an error.
func (dm *DirectionManager) SetInput(dir types.Direction) {
	if !dir.IsValid() {
		return
	}
	if dir == dm.Committed().Opposite() {
		return
	}
	dm.pending.Store(int32(dir))
}

// ProcessInput consumes the pending slot and returns the direction to move
// this tick. Called exactly once per tick by the engine. The pending value
// is re-checked against the committed direction: the reversal guard in
// SetInput raced against a commit that happened after it.
func (dm *DirectionManager) ProcessInput() types.Direction {
	committed := dm.Committed()
	pending := types.Direction(dm.pending.Swap(int32(types.DirNone)))
	if pending.IsValid() && pending != committed.Opposite() {
		dm.committed.Store(int32(pending))
		return pending
	}
	return committed
}

// Committed returns the direction the simulation is currently moving in.
func (dm *DirectionManager) Committed() types.Direction {
	return types.Direction(dm.committed.Load())
}

// NextPosition returns head advanced one step in dir.
func NextPosition(head types.Point, dir types.Direction) types.Point {
	d := dir.Delta()
	return types.Point{Row: head.Row + d.Row, Col: head.Col + d.Col}
}

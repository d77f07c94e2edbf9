package manager

import (
	"sync"
	"testing"

	"snake-game/game/types"
)

func TestProcessInputPromotesPending(t *testing.T) {
	dm := NewDirectionManager(types.DirRight)

	dm.SetInput(types.DirDown)
	if got := dm.ProcessInput(); got != types.DirDown {
		t.Errorf("ProcessInput() = %v, want down", got)
	}
	if got := dm.Committed(); got != types.DirDown {
		t.Errorf("Committed() = %v, want down", got)
	}

	// Slot was cleared: the next tick keeps the committed direction.
	if got := dm.ProcessInput(); got != types.DirDown {
		t.Errorf("second ProcessInput() = %v, want down", got)
	}
}

func TestReversalNeverCommits(t *testing.T) {
	dm := NewDirectionManager(types.DirRight)

	dm.SetInput(types.DirLeft)
	if got := dm.ProcessInput(); got != types.DirRight {
		t.Errorf("reversal request changed direction to %v", got)
	}
	if got := dm.Committed(); got != types.DirRight {
		t.Errorf("Committed() = %v after dropped reversal, want right", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	dm := NewDirectionManager(types.DirRight)

	// Several presses within one tick interval: only the last valid one
	// takes effect.
	dm.SetInput(types.DirDown)
	dm.SetInput(types.DirUp)
	if got := dm.ProcessInput(); got != types.DirUp {
		t.Errorf("ProcessInput() = %v, want up (last write)", got)
	}
}

func TestStaleReversalDroppedAtProcessing(t *testing.T) {
	dm := NewDirectionManager(types.DirRight)

	// A pending value can become a reversal if the commit raced past it;
	// force that state directly and verify ProcessInput re-validates.
	dm.pending.Store(int32(types.DirLeft))
	if got := dm.ProcessInput(); got != types.DirRight {
		t.Errorf("stale reversal committed: %v", got)
	}
}

func TestInvalidInputIgnored(t *testing.T) {
	dm := NewDirectionManager(types.DirUp)

	dm.SetInput(types.DirNone)
	dm.SetInput(types.Direction(42))
	if got := dm.ProcessInput(); got != types.DirUp {
		t.Errorf("invalid input changed direction to %v", got)
	}
}

func TestConcurrentSetInput(t *testing.T) {
	dm := NewDirectionManager(types.DirRight)

	var wg sync.WaitGroup
	dirs := []types.Direction{types.DirUp, types.DirDown, types.DirRight}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				dm.SetInput(dirs[(i+j)%len(dirs)])
			}
		}(i)
	}
	wg.Wait()

	got := dm.ProcessInput()
	if got != types.DirUp && got != types.DirDown && got != types.DirRight {
		t.Errorf("ProcessInput() = %v after concurrent writes", got)
	}
}

func TestNextPosition(t *testing.T) {
	head := types.Point{Row: 5, Col: 5}
	cases := []struct {
		dir  types.Direction
		want types.Point
	}{
		{types.DirUp, types.Point{Row: 4, Col: 5}},
		{types.DirDown, types.Point{Row: 6, Col: 5}},
		{types.DirLeft, types.Point{Row: 5, Col: 4}},
		{types.DirRight, types.Point{Row: 5, Col: 6}},
	}
	for _, c := range cases {
		if got := NextPosition(head, c.dir); got != c.want {
			t.Errorf("NextPosition(%v, %v) = %v, want %v", head, c.dir, got, c.want)
		}
	}
}

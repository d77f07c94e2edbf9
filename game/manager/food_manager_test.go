package manager

import (
	"errors"
	"testing"

	"snake-game/game/entity"
	"snake-game/game/types"
)

func newTestBoard(t *testing.T, rows, cols int) *entity.Board {
	t.Helper()
	board, err := entity.NewBoard(types.Grid{Rows: rows, Cols: cols})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return board
}

func TestPlaceRandomNeverPicksOccupiedCells(t *testing.T) {
	board := newTestBoard(t, 6, 6)
	snakeCells := []types.Point{
		{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
	}
	for _, p := range snakeCells {
		if err := board.SetCellKind(p, types.CellSnake); err != nil {
			t.Fatalf("SetCellKind: %v", err)
		}
	}

	fm := NewFoodManager(1)
	for i := 0; i < 100; i++ {
		pos, err := fm.PlaceRandom(board)
		if err != nil {
			t.Fatalf("PlaceRandom: %v", err)
		}
		kind, err := board.CellKindAt(pos)
		if err != nil {
			t.Fatalf("CellKindAt: %v", err)
		}
		if kind != types.CellFood {
			t.Fatalf("placed cell %v holds %v, want food", pos, kind)
		}
		for _, p := range snakeCells {
			if pos == p {
				t.Fatalf("food placed on snake cell %v", pos)
			}
		}
		if pos.Row == 0 || pos.Row == 5 || pos.Col == 0 || pos.Col == 5 {
			t.Fatalf("food placed on wall at %v", pos)
		}
		if err := fm.Remove(board, pos); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
}

func TestPlaceRandomDeterministicWithSeed(t *testing.T) {
	first := make([]types.Point, 0, 10)
	for run := 0; run < 2; run++ {
		board := newTestBoard(t, 8, 8)
		fm := NewFoodManager(42)
		for i := 0; i < 10; i++ {
			pos, err := fm.PlaceRandom(board)
			if err != nil {
				t.Fatalf("PlaceRandom: %v", err)
			}
			if run == 0 {
				first = append(first, pos)
			} else if first[i] != pos {
				t.Fatalf("placement %d differs between seeded runs: %v vs %v", i, first[i], pos)
			}
			if err := fm.Remove(board, pos); err != nil {
				t.Fatalf("Remove: %v", err)
			}
		}
	}
}

func TestPlaceRandomOnFullBoard(t *testing.T) {
	board := newTestBoard(t, 4, 4)
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			if err := board.SetCellKind(types.Point{Row: r, Col: c}, types.CellSnake); err != nil {
				t.Fatalf("SetCellKind: %v", err)
			}
		}
	}

	fm := NewFoodManager(1)
	if _, err := fm.PlaceRandom(board); !errors.Is(err, types.ErrNoSpace) {
		t.Errorf("full board: got %v, want ErrNoSpace", err)
	}
}

func TestRemoveClearsCell(t *testing.T) {
	board := newTestBoard(t, 5, 5)
	fm := NewFoodManager(7)

	pos, err := fm.PlaceRandom(board)
	if err != nil {
		t.Fatalf("PlaceRandom: %v", err)
	}
	if err := fm.Remove(board, pos); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	kind, err := board.CellKindAt(pos)
	if err != nil {
		t.Fatalf("CellKindAt: %v", err)
	}
	if kind != types.CellEmpty {
		t.Errorf("removed food cell holds %v, want empty", kind)
	}
}

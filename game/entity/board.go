package entity

import (
	"fmt"

	"snake-game/game/types"
)

// Board is the fixed-size cell grid. The outer ring is always wall; the
// interior starts empty and is mutated one cell at a time by the engine.
type Board struct {
	grid  types.Grid
	cells [][]types.CellKind
}

// NewBoard builds a board of the given dimensions with its wall ring in
// place. Dimensions must leave at least one interior cell.
func NewBoard(grid types.Grid) (*Board, error) {
	if grid.Rows < 3 || grid.Cols < 3 {
		return nil, fmt.Errorf("board %dx%d leaves no interior", grid.Rows, grid.Cols)
	}

	cells := make([][]types.CellKind, grid.Rows)
	for r := range cells {
		cells[r] = make([]types.CellKind, grid.Cols)
		for c := range cells[r] {
			if r == 0 || r == grid.Rows-1 || c == 0 || c == grid.Cols-1 {
				cells[r][c] = types.CellWall
			}
		}
	}

	return &Board{grid: grid, cells: cells}, nil
}

// Grid returns the board dimensions.
func (b *Board) Grid() types.Grid {
	return b.grid
}

// CellKindAt reads the cell at pos. The wall ring is a valid read target.
func (b *Board) CellKindAt(pos types.Point) (types.CellKind, error) {
	if !b.grid.Contains(pos) {
		return types.CellEmpty, fmt.Errorf("read (%d,%d): %w", pos.Row, pos.Col, types.ErrOutOfRange)
	}
	return b.cells[pos.Row][pos.Col], nil
}

// SetCellKind overwrites the cell at pos.
func (b *Board) SetCellKind(pos types.Point, kind types.CellKind) error {
	if !b.grid.Contains(pos) {
		return fmt.Errorf("write (%d,%d): %w", pos.Row, pos.Col, types.ErrOutOfRange)
	}
	b.cells[pos.Row][pos.Col] = kind
	return nil
}

// EmptyCells returns every empty cell in row-major order. Runs once per food
// placement, not per tick, so the full scan is fine at these board sizes.
func (b *Board) EmptyCells() []types.Point {
	var empty []types.Point
	for r := 0; r < b.grid.Rows; r++ {
		for c := 0; c < b.grid.Cols; c++ {
			if b.cells[r][c] == types.CellEmpty {
				empty = append(empty, types.Point{Row: r, Col: c})
			}
		}
	}
	return empty
}

// SnapshotCells returns a deep copy of the grid for snapshot construction.
func (b *Board) SnapshotCells() [][]types.CellKind {
	cells := make([][]types.CellKind, b.grid.Rows)
	for r := range cells {
		cells[r] = make([]types.CellKind, b.grid.Cols)
		copy(cells[r], b.cells[r])
	}
	return cells
}

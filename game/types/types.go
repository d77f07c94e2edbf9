package types

import "errors"

// Point is a board coordinate. Row 0 is the top wall, Col 0 the left wall.
type Point struct {
	Row, Col int
}

// Grid holds the full board dimensions, wall ring included.
type Grid struct {
	Rows int
	Cols int
}

// Interior returns the playable dimensions inside the wall ring.
func (g Grid) Interior() (rows, cols int) {
	return g.Rows - 2, g.Cols - 2
}

// Contains reports whether p lies anywhere on the board, walls included.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// CellKind classifies a single board cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSnake
	CellFood
	CellWall
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	case CellWall:
		return "wall"
	}
	return "unknown"
}

// Direction is a cardinal movement direction. The zero value DirNone marks
// an empty pending-input slot and is never a legal movement direction.
type Direction int32

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Row: -1}
	case DirDown:
		return Point{Row: 1}
	case DirLeft:
		return Point{Col: -1}
	case DirRight:
		return Point{Col: 1}
	}
	return Point{}
}

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// IsValid reports whether d is one of the four movement directions.
func (d Direction) IsValid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

var (
	// ErrOutOfRange signals a board access outside the full grid. All internal
	// callers bounds-check first, so hitting it means a broken caller.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNoSpace signals that no empty cell is left for food placement.
	ErrNoSpace = errors.New("no empty cell available")
)

package types

// GameState is one published moment of the game. It is built exactly once per
// tick, never mutated afterwards, and shared by reference with any number of
// concurrent readers. Readers must treat every field as read-only.
type GameState struct {
	Grid  Grid
	Cells [][]CellKind

	// Snake body, head first.
	Snake []Point

	Direction Direction
	Score     int
	Length    int
	Tick      uint64

	// Alive is false exactly from the tick that ended the game.
	Alive bool
	// Won marks the board-full ending (no cell left for food).
	Won bool
}

// Head returns the snake head position.
func (s *GameState) Head() Point {
	return s.Snake[0]
}

// CellAt reads a cell without bounds checking. Callers iterate within
// s.Grid dimensions.
func (s *GameState) CellAt(p Point) CellKind {
	return s.Cells[p.Row][p.Col]
}

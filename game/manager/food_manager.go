package manager

import (
	"golang.org/x/exp/rand"

	"snake-game/game/entity"
	"snake-game/game/types"
)

// FoodManager places and removes food cells. It owns the session RNG so runs
// are reproducible from a fixed seed.
type FoodManager struct {
	rng *rand.Rand
}

// NewFoodManager creates a manager seeded once for the session.
func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{rng: rand.New(rand.NewSource(seed))}
}

// PlaceRandom puts food on a uniformly chosen empty cell and returns its
// position. Returns ErrNoSpace when the board has no empty cell left; that is
// a terminal win condition for the caller, not a fault.
func (fm *FoodManager) PlaceRandom(board *entity.Board) (types.Point, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return types.Point{}, types.ErrNoSpace
	}
	pos := empty[fm.rng.Intn(len(empty))]
	if err := board.SetCellKind(pos, types.CellFood); err != nil {
		return types.Point{}, err
	}
	return pos, nil
}

// Remove clears the food cell back to empty.
func (fm *FoodManager) Remove(board *entity.Board, pos types.Point) error {
	return board.SetCellKind(pos, types.CellEmpty)
}

package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionManager is a stateless predicate set used by the engine each tick.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsOutOfBounds reports whether pos lies outside the full grid.
func (cm *CollisionManager) IsOutOfBounds(pos types.Point, grid types.Grid) bool {
	return !grid.Contains(pos)
}

// IsWall reports whether the cell kind is a wall.
func (cm *CollisionManager) IsWall(kind types.CellKind) bool {
	return kind == types.CellWall
}

// IsFood reports whether the cell kind is food.
func (cm *CollisionManager) IsFood(kind types.CellKind) bool {
	return kind == types.CellFood
}

// IsSelfCollision delegates to the snake's tail-aware collision rule.
func (cm *CollisionManager) IsSelfCollision(s *entity.Snake, candidate types.Point, willEat bool) bool {
	return s.CheckSelfCollision(candidate, willEat)
}

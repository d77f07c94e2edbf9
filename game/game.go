package game

import (
	"errors"
	"fmt"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// Status is the engine lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
)

// Engine owns the board, the snake and the managers, advances the game one
// discrete tick per Update call, and publishes an immutable snapshot after
// every tick. The simulation itself is single-threaded for determinism; the
// only concurrency-safe entry points are SetDirection and GetGameState.
type Engine struct {
	board      *entity.Board
	snake      *entity.Snake
	foods      *manager.FoodManager
	collisions *manager.CollisionManager
	directions *manager.DirectionManager
	states     *manager.StateManager

	foodPos       types.Point
	score         int
	pointsPerFood int
	tick          uint64
	status        Status
}

// NewEngine creates an engine with its food RNG seeded once for the session.
// The engine is idle until InitializeBoard.
func NewEngine(seed uint64) *Engine {
	return &Engine{
		foods:      manager.NewFoodManager(seed),
		collisions: manager.NewCollisionManager(),
		states:     manager.NewStateManager(),
		status:     StatusNotStarted,
	}
}

// InitializeBoard sets up a fresh running game: wall ring, snake laid along
// the initial direction centered on the interior, first food, score zero.
// Publishes the first snapshot and transitions to Running. Also the only way
// out of GameOver. Corrupt parameters are a hard error.
func (e *Engine) InitializeBoard(rows, cols, startingLength, pointsPerFood int, initial types.Direction) error {
	if startingLength < 1 {
		return fmt.Errorf("starting length %d: need at least one segment", startingLength)
	}
	if pointsPerFood < 0 {
		return fmt.Errorf("points per food %d: must not be negative", pointsPerFood)
	}
	if !initial.IsValid() {
		return fmt.Errorf("initial direction %v: not a movement direction", initial)
	}

	grid := types.Grid{Rows: rows, Cols: cols}
	board, err := entity.NewBoard(grid)
	if err != nil {
		return err
	}

	// Head at the interior center, body trailing opposite the direction of
	// travel.
	head := types.Point{Row: rows / 2, Col: cols / 2}
	delta := initial.Delta()
	body := make([]types.Point, startingLength)
	for i := range body {
		seg := types.Point{Row: head.Row - i*delta.Row, Col: head.Col - i*delta.Col}
		kind, err := board.CellKindAt(seg)
		if err != nil || kind == types.CellWall {
			return fmt.Errorf("snake of length %d does not fit a %dx%d board", startingLength, rows, cols)
		}
		body[i] = seg
	}

	snake := entity.NewSnake(body)
	for _, seg := range body {
		if err := board.SetCellKind(seg, types.CellSnake); err != nil {
			return err
		}
	}

	foodPos, err := e.foods.PlaceRandom(board)
	if err != nil {
		return fmt.Errorf("place first food: %w", err)
	}

	e.board = board
	e.snake = snake
	e.foodPos = foodPos
	e.score = 0
	e.pointsPerFood = pointsPerFood
	e.tick = 0
	e.directions = manager.NewDirectionManager(initial)
	e.status = StatusRunning

	e.publish(true, false)
	return nil
}

// Update advances the game one tick. Returns false exactly once, on the tick
// that ends the game; calls outside Running are no-ops returning false.
func (e *Engine) Update() bool {
	if e.status != StatusRunning {
		return false
	}
	e.tick++

	dir := e.directions.ProcessInput()
	candidate := manager.NextPosition(e.snake.Head(), dir)

	kind, err := e.board.CellKindAt(candidate)
	willEat := err == nil && e.collisions.IsFood(kind)

	dead := e.collisions.IsOutOfBounds(candidate, e.board.Grid()) ||
		e.collisions.IsWall(kind) ||
		e.collisions.IsSelfCollision(e.snake, candidate, willEat)
	if dead {
		e.status = StatusGameOver
		e.publish(false, false)
		return false
	}

	if willEat {
		// Clear the food cell before the head claims it.
		if err := e.foods.Remove(e.board, e.foodPos); err != nil {
			panic(fmt.Sprintf("clear food cell: %v", err))
		}
	}

	tail, vacated := e.snake.Move(candidate, willEat)
	if vacated {
		if err := e.board.SetCellKind(tail, types.CellEmpty); err != nil {
			panic(fmt.Sprintf("clear tail cell: %v", err))
		}
	}
	if err := e.board.SetCellKind(candidate, types.CellSnake); err != nil {
		panic(fmt.Sprintf("set head cell: %v", err))
	}

	if willEat {
		e.score += e.pointsPerFood
		foodPos, err := e.foods.PlaceRandom(e.board)
		if errors.Is(err, types.ErrNoSpace) {
			// Board full: nothing left to eat. Game over with max score,
			// flagged as a win rather than a crash.
			e.status = StatusGameOver
			e.publish(false, true)
			return false
		}
		if err != nil {
			panic(fmt.Sprintf("place food: %v", err))
		}
		e.foodPos = foodPos
	}

	e.publish(true, false)
	return true
}

// GetGameState returns the latest published snapshot. Safe to call from a
// rendering goroutine concurrently with Update. Nil before InitializeBoard.
func (e *Engine) GetGameState() *types.GameState {
	return e.states.Current()
}

// SetDirection forwards a direction request to the pending-input slot. Safe
// to call from an input goroutine concurrently with Update.
func (e *Engine) SetDirection(dir types.Direction) {
	if e.directions == nil {
		return
	}
	e.directions.SetInput(dir)
}

// Status returns the lifecycle state. Only meaningful on the engine's own
// goroutine; observers read snapshots instead.
func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) publish(alive, won bool) {
	e.states.Publish(&types.GameState{
		Grid:      e.board.Grid(),
		Cells:     e.board.SnapshotCells(),
		Snake:     e.snake.Body(),
		Direction: e.directions.Committed(),
		Score:     e.score,
		Length:    e.snake.Len(),
		Tick:      e.tick,
		Alive:     alive,
		Won:       won,
	})
}

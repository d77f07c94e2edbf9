//go:build raylib

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/config"
	"snake-game/game/types"
)

const (
	windowWidth   = 960
	windowHeight  = 640
	borderPadding = 10
	hudHeight     = 40
)

// raylibBackend draws the board as colored rectangles in a resizable window.
type raylibBackend struct {
	cfg      config.Config
	cellSize int32
	offsetX  int32
	offsetY  int32
}

// NewBackend returns the windowed backend.
func NewBackend(cfg config.Config) Backend {
	return &raylibBackend{cfg: cfg}
}

func (b *raylibBackend) Init() error {
	rl.InitWindow(windowWidth, windowHeight, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)
	return nil
}

func (b *raylibBackend) Close() {
	rl.CloseWindow()
}

func (b *raylibBackend) PollKey() Key {
	switch {
	case rl.WindowShouldClose():
		return KeyQuit
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyW):
		return KeyUp
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyS):
		return KeyDown
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyA):
		return KeyLeft
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyD):
		return KeyRight
	case rl.IsKeyPressed(rl.KeyEnter):
		return KeyEnter
	case rl.IsKeyPressed(rl.KeyR):
		return KeyRestart
	case rl.IsKeyPressed(rl.KeyQ):
		return KeyQuit
	}
	return KeyNone
}

func (b *raylibBackend) Render(frame Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	state := frame.State
	if state != nil {
		b.updateDimensions(state.Grid)
		b.drawBoard(state)
		b.drawHUD(state, frame.HighScore)
	}

	switch frame.Phase {
	case PhaseInstructions:
		b.drawCentered("Arrow Keys or WASD to move - ENTER to start - Q to quit", 20, rl.RayWhite)
	case PhaseGameOver:
		b.drawGameOver(state, frame)
	}

	rl.EndDrawing()
}

func (b *raylibBackend) updateDimensions(grid types.Grid) {
	availableW := int32(rl.GetScreenWidth()) - borderPadding*2
	availableH := int32(rl.GetScreenHeight()) - borderPadding*2 - hudHeight

	cellW := availableW / int32(grid.Cols)
	cellH := availableH / int32(grid.Rows)
	b.cellSize = min(cellW, cellH)

	b.offsetX = (int32(rl.GetScreenWidth()) - b.cellSize*int32(grid.Cols)) / 2
	b.offsetY = hudHeight + (availableH-b.cellSize*int32(grid.Rows))/2
}

func (b *raylibBackend) drawBoard(state *types.GameState) {
	head := state.Head()
	for r := 0; r < state.Grid.Rows; r++ {
		for c := 0; c < state.Grid.Cols; c++ {
			pos := types.Point{Row: r, Col: c}
			color, ok := b.cellColor(state, pos, head)
			if !ok {
				continue
			}
			rl.DrawRectangle(
				b.offsetX+int32(c)*b.cellSize,
				b.offsetY+int32(r)*b.cellSize,
				b.cellSize-1, b.cellSize-1, color)
		}
	}
}

func (b *raylibBackend) cellColor(state *types.GameState, pos, head types.Point) (rl.Color, bool) {
	switch state.CellAt(pos) {
	case types.CellSnake:
		if pos == head {
			return rl.Lime, true
		}
		return rl.Green, true
	case types.CellFood:
		return rl.Red, true
	case types.CellWall:
		return rl.DarkGray, true
	}
	return rl.Color{}, false
}

func (b *raylibBackend) drawHUD(state *types.GameState, highScore int) {
	hud := fmt.Sprintf("Score: %d  |  Length: %d  |  High Score: %d",
		state.Score, state.Length, highScore)
	rl.DrawText(hud, borderPadding, 10, 20, rl.RayWhite)
}

func (b *raylibBackend) drawGameOver(state *types.GameState, frame Frame) {
	title := "GAME OVER!"
	if state != nil && state.Won {
		title = "YOU WIN! Board cleared."
	}
	b.drawCentered(title, 30, rl.Red)

	y := int32(rl.GetScreenHeight())/2 + 20
	if frame.NewHighScore && state != nil && state.Score > 0 {
		rl.DrawText("*** NEW HIGH SCORE! ***",
			int32(rl.GetScreenWidth())/2-140, y, 24, rl.Gold)
		y += 30
	}
	rl.DrawText("Press R to Replay, Q to Quit",
		int32(rl.GetScreenWidth())/2-150, y, 20, rl.RayWhite)
}

func (b *raylibBackend) drawCentered(text string, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text,
		(int32(rl.GetScreenWidth())-width)/2,
		int32(rl.GetScreenHeight())/2-size/2,
		size, color)
}

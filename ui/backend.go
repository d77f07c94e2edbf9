// Package ui renders snapshots and polls input. Two backends exist, chosen
// at build time: the default terminal backend (tcell) and a windowed one
// behind the raylib build tag.
package ui

import "snake-game/game/types"

// Key is a decoded input action.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyRestart
	KeyQuit
)

// Phase selects what a frame shows around the board.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhasePlaying
	PhaseGameOver
)

// Frame is one render request. State is an immutable snapshot; the backend
// may hold it across the call but must not write to it.
type Frame struct {
	State        *types.GameState
	HighScore    int
	NewHighScore bool
	Phase        Phase
}

// Backend is the platform shim: init/teardown, non-blocking key polling and
// frame drawing. PollKey never blocks; it returns KeyNone when no input is
// waiting.
type Backend interface {
	Init() error
	Close()
	PollKey() Key
	Render(Frame)
}

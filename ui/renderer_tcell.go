//go:build !raylib

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-game/config"
	"snake-game/game/types"
)

const headerRows = 2

// tcellBackend draws the board as character cells on a raw terminal screen.
// Key events are decoded on a reader goroutine and handed to the session
// through a small buffered channel; when the channel is full the oldest
// unread press is simply superseded by later state, matching the
// last-write-wins input model.
type tcellBackend struct {
	cfg    config.Config
	screen tcell.Screen
	keys   chan Key
	quit   chan struct{}
}

// NewBackend returns the terminal backend.
func NewBackend(cfg config.Config) Backend {
	return &tcellBackend{
		cfg:  cfg,
		keys: make(chan Key, 8),
		quit: make(chan struct{}),
	}
}

func (b *tcellBackend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	b.screen = screen

	go b.readKeys()
	return nil
}

func (b *tcellBackend) Close() {
	close(b.quit)
	b.screen.Fini()
}

func (b *tcellBackend) readKeys() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-b.quit:
			return
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			if key := decodeKey(ev); key != KeyNone {
				select {
				case b.keys <- key:
				default:
				}
			}
		}
	}
}

func decodeKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return KeyUp
		case 's', 'S':
			return KeyDown
		case 'a', 'A':
			return KeyLeft
		case 'd', 'D':
			return KeyRight
		case 'r', 'R':
			return KeyRestart
		case 'q', 'Q':
			return KeyQuit
		}
	}
	return KeyNone
}

func (b *tcellBackend) PollKey() Key {
	select {
	case key := <-b.keys:
		return key
	default:
		return KeyNone
	}
}

func (b *tcellBackend) Render(frame Frame) {
	b.screen.Clear()

	state := frame.State
	if state != nil {
		b.drawScore(state, frame.HighScore)
		b.drawBoard(state)
	}

	switch frame.Phase {
	case PhaseInstructions:
		b.drawInstructions(state)
	case PhaseGameOver:
		b.drawGameOver(state, frame)
	}

	b.screen.Show()
}

func (b *tcellBackend) drawScore(state *types.GameState, highScore int) {
	line := fmt.Sprintf("Score: %4d  |  Length: %3d  |  High Score: %4d",
		state.Score, state.Length, highScore)
	b.drawText(1, 0, tcell.StyleDefault.Bold(true), line)
}

func (b *tcellBackend) drawBoard(state *types.GameState) {
	head := state.Head()
	for r := 0; r < state.Grid.Rows; r++ {
		for c := 0; c < state.Grid.Cols; c++ {
			pos := types.Point{Row: r, Col: c}
			glyph, style := b.cell(state, pos, head)
			b.screen.SetContent(c, headerRows+r, glyph, nil, style)
		}
	}
}

func (b *tcellBackend) cell(state *types.GameState, pos, head types.Point) (rune, tcell.Style) {
	switch state.CellAt(pos) {
	case types.CellSnake:
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if pos == head {
			return b.cfg.HeadGlyph, style.Bold(true)
		}
		return b.cfg.BodyGlyph, style
	case types.CellFood:
		return b.cfg.FoodGlyph, tcell.StyleDefault.Foreground(tcell.ColorRed)
	case types.CellWall:
		return b.cfg.WallGlyph, tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return b.cfg.EmptyGlyph, tcell.StyleDefault
}

func (b *tcellBackend) drawInstructions(state *types.GameState) {
	top := headerRows
	if state != nil {
		top += state.Grid.Rows + 1
	}
	lines := []string{
		"CONTROLS:",
		"  W or UP Arrow    - Move UP",
		"  S or DOWN Arrow  - Move DOWN",
		"  A or LEFT Arrow  - Move LEFT",
		"  D or RIGHT Arrow - Move RIGHT",
		"  Q                - Quit Game",
		"",
		"Press ENTER to start...",
	}
	for i, line := range lines {
		b.drawText(1, top+i, tcell.StyleDefault, line)
	}
}

func (b *tcellBackend) drawGameOver(state *types.GameState, frame Frame) {
	top := headerRows + state.Grid.Rows + 1

	title := "GAME OVER!"
	if state.Won {
		title = "YOU WIN! Board cleared."
	}
	lines := []string{
		title,
		fmt.Sprintf("Final Score: %d", state.Score),
		fmt.Sprintf("High Score:  %d", frame.HighScore),
	}
	if frame.NewHighScore && state.Score > 0 {
		lines = append(lines, "*** NEW HIGH SCORE! ***")
	}
	lines = append(lines, "", "Press R to Replay, Q to Quit")

	for i, line := range lines {
		b.drawText(1, top+i, tcell.StyleDefault.Bold(i == 0), line)
	}
}

func (b *tcellBackend) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		b.screen.SetContent(x+i, y, r, nil, style)
	}
}

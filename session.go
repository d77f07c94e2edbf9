package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"snake-game/config"
	"snake-game/events"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/score"
	"snake-game/ui"
)

// pollDelay is the input-poll cadence between ticks. Input is polled much
// faster than the tick rate so a key press lands in the pending slot before
// the next update consumes it.
const pollDelay = 10 * time.Millisecond

// Session drives one game from instructions screen to game-over screen. The
// engine tick runs here; the backend renders published snapshots and feeds
// decoded keys back in.
type Session struct {
	cfg     config.Config
	engine  *game.Engine
	backend ui.Backend
	events  *events.Manager
	scores  *score.Manager

	lastScore int
}

func NewSession(cfg config.Config, engine *game.Engine, backend ui.Backend, em *events.Manager, scores *score.Manager) *Session {
	return &Session{
		cfg:     cfg,
		engine:  engine,
		backend: backend,
		events:  em,
		scores:  scores,
	}
}

// Run plays one game. Returns true when the player asked for a replay.
func (s *Session) Run() bool {
	if !s.waitForStart() {
		return false
	}

	log.Info().
		Int("rows", s.cfg.Rows).
		Int("cols", s.cfg.Cols).
		Msg("session started")

	if !s.gameLoop() {
		return false
	}

	final := s.engine.GetGameState()
	newHigh := s.scores.IsNew(final.Score) && final.Score > 0
	s.scores.Check(final.Score)
	s.events.Notify(events.Event{Type: events.GameOver, Value: final.Score})

	log.Info().
		Int("score", final.Score).
		Int("length", final.Length).
		Uint64("ticks", final.Tick).
		Bool("won", final.Won).
		Msg("game over")

	s.backend.Render(ui.Frame{
		State:        final,
		HighScore:    s.scores.High(),
		NewHighScore: newHigh,
		Phase:        ui.PhaseGameOver,
	})
	return s.waitForReplay()
}

// waitForStart shows the instructions screen until ENTER. False means quit.
func (s *Session) waitForStart() bool {
	frame := ui.Frame{
		State:     s.engine.GetGameState(),
		HighScore: s.scores.High(),
		Phase:     ui.PhaseInstructions,
	}
	for {
		s.backend.Render(frame)
		switch s.backend.PollKey() {
		case ui.KeyEnter:
			return true
		case ui.KeyQuit:
			return false
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// gameLoop runs ticks at the configured cadence until the game ends. False
// means the player quit mid-game.
func (s *Session) gameLoop() bool {
	lastUpdate := time.Now()
	for {
		if !s.handleInput() {
			return false
		}

		if time.Since(lastUpdate) >= s.cfg.UpdateDelay {
			alive := s.engine.Update()
			lastUpdate = time.Now()

			state := s.engine.GetGameState()
			s.notifyScoreEvents(state)
			s.backend.Render(ui.Frame{
				State:     state,
				HighScore: s.scores.High(),
				Phase:     ui.PhasePlaying,
			})

			if !alive {
				return true
			}
		}

		time.Sleep(pollDelay)
	}
}

func (s *Session) handleInput() bool {
	switch s.backend.PollKey() {
	case ui.KeyUp:
		s.engine.SetDirection(types.DirUp)
	case ui.KeyDown:
		s.engine.SetDirection(types.DirDown)
	case ui.KeyLeft:
		s.engine.SetDirection(types.DirLeft)
	case ui.KeyRight:
		s.engine.SetDirection(types.DirRight)
	case ui.KeyQuit:
		return false
	}
	return true
}

func (s *Session) notifyScoreEvents(state *types.GameState) {
	if state.Score == s.lastScore {
		return
	}
	s.lastScore = state.Score
	s.events.Notify(events.Event{Type: events.FoodEaten, Value: s.cfg.PointsPerFood})
	s.events.Notify(events.Event{Type: events.SnakeGrew, Value: state.Length})
	s.events.Notify(events.Event{Type: events.ScoreChanged, Value: state.Score})
}

func (s *Session) waitForReplay() bool {
	for {
		switch s.backend.PollKey() {
		case ui.KeyRestart:
			return true
		case ui.KeyQuit:
			return false
		}
		time.Sleep(50 * time.Millisecond)
	}
}

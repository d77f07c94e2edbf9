package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snake-game/audio"
	"snake-game/config"
	"snake-game/events"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/score"
	"snake-game/ui"
)

func main() {
	cfg := config.Load()
	closeLog := setupLogging(cfg)
	defer closeLog()

	backend := ui.NewBackend(cfg)
	if err := backend.Init(); err != nil {
		log.Error().Err(err).Msg("display init failed")
		os.Exit(1)
	}
	defer backend.Close()

	em := events.NewManager()

	scores := score.NewManager(cfg.HighScoreFile)
	scores.SetEventManager(em)

	if cfg.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the game runs without sound.
			log.Warn().Err(err).Msg("audio init failed")
		}
		em.Subscribe(events.FoodEaten, player)
		em.Subscribe(events.GameOver, player)
		em.Subscribe(events.HighScoreBeaten, player)
	}

	for {
		engine := game.NewEngine(foodSeed(cfg))
		err := engine.InitializeBoard(cfg.Rows, cfg.Cols, cfg.StartingLength, cfg.PointsPerFood, types.DirRight)
		if err != nil {
			log.Error().Err(err).Msg("board init failed")
			os.Exit(1)
		}

		stats := game.NewSessionStats()
		replay := NewSession(cfg, engine, backend, em, scores).Run()
		stats.Finalize(engine.GetGameState())
		if err := stats.Save(cfg.DataDir); err != nil {
			log.Warn().Err(err).Msg("could not save session stats")
		}

		if !replay {
			return
		}
	}
}

// setupLogging sends the global logger to a file when configured; the
// terminal backend owns stdout, so there is no console logging.
func setupLogging(cfg config.Config) func() {
	if lvl, err := zerolog.ParseLevel(getEnv("SNAKE_LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }
}

func foodSeed(cfg config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

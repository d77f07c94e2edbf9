// Package config holds the game settings: compiled-in defaults, optionally
// overridden from the environment (a .env file is honored in development).
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full set of tunables for one run.
type Config struct {
	// Board dimensions including the wall ring; the playable interior is
	// (Rows-2) x (Cols-2).
	Rows int
	Cols int

	StartingLength int
	PointsPerFood  int
	UpdateDelay    time.Duration

	// Seed for food placement; 0 means seed from the clock.
	Seed uint64

	// Display glyphs (terminal backend).
	HeadGlyph  rune
	BodyGlyph  rune
	FoodGlyph  rune
	WallGlyph  rune
	EmptyGlyph rune

	HighScoreFile string
	DataDir       string

	// LogFile enables file logging when set; the terminal owns stdout.
	LogFile string
	Sound   bool
}

// Load returns the defaults with any SNAKE_* environment overrides applied.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Rows:           getEnvInt("SNAKE_ROWS", 22),
		Cols:           getEnvInt("SNAKE_COLS", 42),
		StartingLength: getEnvInt("SNAKE_LENGTH", 3),
		PointsPerFood:  getEnvInt("SNAKE_POINTS", 10),
		UpdateDelay:    time.Duration(getEnvInt("SNAKE_SPEED_MS", 150)) * time.Millisecond,
		Seed:           uint64(getEnvInt("SNAKE_SEED", 0)),
		HeadGlyph:      'O',
		BodyGlyph:      'o',
		FoodGlyph:      '*',
		WallGlyph:      '#',
		EmptyGlyph:     ' ',
		HighScoreFile:  getEnv("SNAKE_HIGHSCORE_FILE", "game_highest.txt"),
		DataDir:        getEnv("SNAKE_DATA_DIR", "data"),
		LogFile:        getEnv("SNAKE_LOG", ""),
		Sound:          getEnv("SNAKE_SOUND", "") == "1",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

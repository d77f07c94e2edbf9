package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"snake-game/game/types"
)

// SessionStats records one play session for the stats file under data/.
type SessionStats struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Ticks     uint64    `json:"ticks"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Won       bool      `json:"won"`
}

// NewSessionStats starts a record for a session beginning now.
func NewSessionStats() *SessionStats {
	return &SessionStats{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Finalize fills in the end-of-session fields from the final snapshot.
func (s *SessionStats) Finalize(state *types.GameState) {
	s.EndTime = time.Now()
	if state == nil {
		return
	}
	s.Ticks = state.Tick
	s.Score = state.Score
	s.Length = state.Length
	s.Won = state.Won
}

// Save writes the record as indented JSON to dir/sessions/<uuid>.json.
func (s *SessionStats) Save(dir string) error {
	sessionDir := filepath.Join(dir, "sessions")
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return os.WriteFile(filepath.Join(sessionDir, s.UUID+".json"), data, 0644)
}

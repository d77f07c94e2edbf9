package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"snake-game/game/types"
)

func TestSessionStatsSaveRoundTrip(t *testing.T) {
	stats := NewSessionStats()
	if stats.UUID == "" {
		t.Fatal("session stats without UUID")
	}

	stats.Finalize(&types.GameState{Tick: 42, Score: 30, Length: 6, Won: false})
	if stats.EndTime.IsZero() {
		t.Error("Finalize did not set the end time")
	}

	dir := t.TempDir()
	if err := stats.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sessions", stats.UUID+".json"))
	if err != nil {
		t.Fatalf("read stats file: %v", err)
	}

	var loaded SessionStats
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("decode stats file: %v", err)
	}
	if loaded.Score != 30 || loaded.Length != 6 || loaded.Ticks != 42 {
		t.Errorf("loaded stats %+v do not match saved values", loaded)
	}
}

func TestFinalizeNilSnapshot(t *testing.T) {
	stats := NewSessionStats()
	stats.Finalize(nil)
	if stats.EndTime.IsZero() {
		t.Error("Finalize(nil) did not set the end time")
	}
}

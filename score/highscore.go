// Package score persists the high score as a plain-text file holding the
// decimal ASCII value, nothing else.
package score

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"snake-game/events"
)

// Manager loads the high score at startup and rewrites the file whenever a
// new high score is confirmed. It subscribes to ScoreChanged events and
// emits HighScoreBeaten when a previous record falls.
type Manager struct {
	path   string
	high   int
	events *events.Manager
}

// NewManager reads the high score from path. A missing or unreadable file
// means no record yet.
func NewManager(path string) *Manager {
	m := &Manager{path: path}
	m.load()
	return m
}

// SetEventManager wires the manager into the event system.
func (m *Manager) SetEventManager(em *events.Manager) {
	m.events = em
	em.Subscribe(events.ScoreChanged, m)
}

// OnEvent implements events.Listener.
func (m *Manager) OnEvent(e events.Event) {
	if e.Type == events.ScoreChanged {
		m.Check(e.Value)
	}
}

// Check records score if it beats the current high score. Persistence is
// best effort; a failed write keeps the in-memory value.
func (m *Manager) Check(score int) {
	if score <= m.high {
		return
	}
	previous := m.high
	m.high = score
	m.save()
	if m.events != nil && previous > 0 {
		m.events.Notify(events.Event{Type: events.HighScoreBeaten, Value: score})
	}
}

// High returns the current high score.
func (m *Manager) High() int {
	return m.high
}

// IsNew reports whether score would set a new record.
func (m *Manager) IsNew(score int) bool {
	return score > m.high
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Warn().Str("path", m.path).Err(err).Msg("high score file unreadable, starting at zero")
		return
	}
	m.high = value
}

func (m *Manager) save() {
	if err := os.WriteFile(m.path, []byte(strconv.Itoa(m.high)), 0644); err != nil {
		log.Warn().Str("path", m.path).Err(err).Msg("could not save high score")
	}
}

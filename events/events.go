// Package events is the subscribe/notify wiring used by the UI layer. The
// game core never touches it; the session translates snapshot changes into
// events here.
package events

// Type identifies a kind of game event.
type Type int

const (
	FoodEaten Type = iota
	SnakeGrew
	GameOver
	ScoreChanged
	HighScoreBeaten
)

func (t Type) String() string {
	switch t {
	case FoodEaten:
		return "food_eaten"
	case SnakeGrew:
		return "snake_grew"
	case GameOver:
		return "game_over"
	case ScoreChanged:
		return "score_changed"
	case HighScoreBeaten:
		return "high_score_beaten"
	}
	return "unknown"
}

// Event carries a type plus an optional value and message.
type Event struct {
	Type    Type
	Value   int
	Message string
}

// Listener receives events it subscribed to. Listeners must outlive the
// manager; it holds plain references.
type Listener interface {
	OnEvent(Event)
}

// Manager maps event types to subscribers. Subscribe and Notify run on the
// session goroutine only; there is no internal locking.
type Manager struct {
	listeners map[Type][]Listener
}

func NewManager() *Manager {
	return &Manager{listeners: make(map[Type][]Listener)}
}

// Subscribe registers l for events of type t.
func (m *Manager) Subscribe(t Type, l Listener) {
	m.listeners[t] = append(m.listeners[t], l)
}

// Notify delivers e to every listener subscribed to its type, in
// subscription order.
func (m *Manager) Notify(e Event) {
	for _, l := range m.listeners[e.Type] {
		l.OnEvent(e)
	}
}

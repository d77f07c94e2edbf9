package entity

import "snake-game/game/types"

// Snake is the ordered body-segment sequence, head first. Segment positions
// are unique; the move step treats head insertion and tail removal as one
// transition, so tail-chasing is legal movement.
type Snake struct {
	body []types.Point
}

// NewSnake creates a snake from an initial body, head first. The caller lays
// out the segments; the slice is copied.
func NewSnake(body []types.Point) *Snake {
	s := &Snake{body: make([]types.Point, len(body))}
	copy(s.body, body)
	return s
}

// Head returns the current head position.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Tail returns the current tail position.
func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Move prepends nextHead. Unless ateFood, the tail is dropped and returned
// with vacated=true so the caller can clear its board cell. The engine
// guarantees nextHead is a single orthogonal step from the current head;
// this is not re-validated here.
func (s *Snake) Move(nextHead types.Point, ateFood bool) (tail types.Point, vacated bool) {
	tail = s.Tail()
	if ateFood {
		s.body = append([]types.Point{nextHead}, s.body...)
		return tail, false
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = nextHead
	return tail, true
}

// CheckSelfCollision reports whether candidate hits the body. The current
// tail cell is exempt when the tail will vacate this tick (willEat=false):
// moving into the cell the tail is leaving is legal. When food is about to
// be eaten the tail stays put and the hit is real.
func (s *Snake) CheckSelfCollision(candidate types.Point, willEat bool) bool {
	tailIdx := len(s.body) - 1
	for i, seg := range s.body {
		if seg != candidate {
			continue
		}
		if i == tailIdx && !willEat {
			continue
		}
		return true
	}
	return false
}

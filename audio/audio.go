// Package audio plays short synthesized blips for game events. Entirely
// optional: initialization failure leaves a silent player.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snake-game/events"
)

const sampleRate = beep.SampleRate(44100)

// Player implements events.Listener and maps event types to tones.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On failure the player stays usable but
// silent, and the error is returned for logging.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// OnEvent implements events.Listener.
func (p *Player) OnEvent(e events.Event) {
	switch e.Type {
	case events.FoodEaten:
		p.play(880, 50*time.Millisecond)
	case events.HighScoreBeaten:
		p.play(1320, 80*time.Millisecond)
	case events.GameOver:
		p.play(220, 200*time.Millisecond)
	}
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}

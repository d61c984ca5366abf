// Package audio plays the game's cues as synthesized tones.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snejk/game"
)

const sampleRate = beep.SampleRate(44100)

// Player implements game.Cues. Until Init succeeds every cue is dropped, so a
// machine without audio still plays silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) play(notes []note) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := melody(sampleRate, notes, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) FoodEaten() { p.play(foodChime) }

func (p *Player) Died() { p.play(deathBuzz) }

func (p *Player) PhaseChanged(from, to game.Phase) {
	switch to {
	case game.PhaseMenu:
		p.play(menuJingle)
	case game.PhasePlaying:
		p.play(startJingle)
	case game.PhaseGameOver:
		p.play(overJingle)
	}
}

// InitOrSilent opens the speaker and logs instead of failing.
func InitOrSilent(p *Player) game.Cues {
	if err := p.Init(); err != nil {
		log.Printf("[snejk] audio disabled: %v", err)
	}
	return p
}

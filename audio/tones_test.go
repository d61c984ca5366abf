package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"snejk/game"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestMelodyLength(t *testing.T) {
	notes := []note{{440, 50 * time.Millisecond}, {0, 20 * time.Millisecond}, {880, 30 * time.Millisecond}}
	n, peak := drain(melody(sampleRate, notes, 1))

	want := sampleRate.N(50*time.Millisecond) + sampleRate.N(20*time.Millisecond) + sampleRate.N(30*time.Millisecond)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
	if peak == 0 || peak > 1.0001 {
		t.Errorf("unexpected peak %f", peak)
	}
}

func TestMelodySilentAtZeroVolume(t *testing.T) {
	_, peak := drain(melody(sampleRate, foodChime, 0))
	if peak != 0 {
		t.Errorf("expected silence, got peak %f", peak)
	}
}

func TestFadeStartsAtZero(t *testing.T) {
	buf := make([][2]float64, 1)
	s := melody(sampleRate, []note{{440, 20 * time.Millisecond}}, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("expected first sample to be faded in, got %f", buf[0][0])
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0.5)
	// None of these may block or panic without a speaker.
	p.FoodEaten()
	p.Died()
	p.PhaseChanged(game.PhaseMenu, game.PhasePlaying)
	p.Close()

	var _ game.Cues = p
}

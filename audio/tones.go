package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is one pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	foodChime   = []note{{987.77, 60 * time.Millisecond}, {1318.51, 90 * time.Millisecond}}
	deathBuzz   = []note{{220, 120 * time.Millisecond}, {165, 120 * time.Millisecond}, {110, 260 * time.Millisecond}}
	menuJingle  = []note{{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 140 * time.Millisecond}}
	startJingle = []note{{392, 70 * time.Millisecond}, {0, 30 * time.Millisecond}, {392, 70 * time.Millisecond}, {587.33, 140 * time.Millisecond}}
	overJingle  = []note{{392, 160 * time.Millisecond}, {349.23, 160 * time.Millisecond}, {261.63, 320 * time.Millisecond}}
)

// rest streams zero samples forever.
var rest = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	clear(samples)
	return len(samples), true
})

// melody renders notes back to back as sine tones with a short fade on each
// note to avoid clicks.
func melody(sr beep.SampleRate, notes []note, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Take(samples, rest))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, fade(beep.Take(samples, tone), samples, sr.N(8*time.Millisecond)))
	}
	return gain(beep.Seq(parts...), volume)
}

// fade applies a linear attack and release of edge samples.
func fade(s beep.Streamer, total, edge int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			vol := 1.0
			if edge > 0 {
				if pos < edge {
					vol = float64(pos) / float64(edge)
				} else if remaining := total - pos; remaining < edge {
					vol = float64(remaining) / float64(edge)
				}
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
			pos++
		}
		return n, ok
	})
}

// gain scales linearly; zero is silent since log2(0) is -Inf.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

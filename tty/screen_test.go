package tty

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"snejk/game"
	"snejk/game/manager"
	"snejk/game/types"
	"snejk/leaderboard"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(80, 40)
	t.Cleanup(sim.Fini)
	return sim, NewScreenFrom(sim)
}

func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, h := sim.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(row(sim, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func snapshot(phase game.Phase) game.Snapshot {
	return game.Snapshot{
		Phase:   phase,
		Grid:    types.Grid{Width: 200, Height: 200},
		Body:    []types.Point{{X: 40, Y: 20}, {X: 20, Y: 20}},
		Heading: types.Right,
		Food:    types.Point{X: 100, Y: 100},
	}
}

func TestDrawPlaying(t *testing.T) {
	sim, s := newSimScreen(t)
	snap := snapshot(game.PhasePlaying)
	snap.Score = 30
	s.Draw(snap)

	// Board cells are two columns wide inside a one-cell border.
	if r, _, _, _ := sim.GetContent(originX+1+2*2, originY+1+1); r != '▶' {
		t.Errorf("head rune = %q, want ▶", r)
	}
	if r, _, _, _ := sim.GetContent(originX+1+1*2, originY+1+1); r != '█' {
		t.Errorf("body rune = %q, want █", r)
	}
	if r, _, _, _ := sim.GetContent(originX+1+5*2, originY+1+5); r != '●' {
		t.Errorf("food rune = %q, want ●", r)
	}
	if !strings.Contains(row(sim, 0), "score 30") {
		t.Errorf("HUD missing score: %q", row(sim, 0))
	}
}

func TestDrawHazardOnlyWhenActive(t *testing.T) {
	sim, s := newSimScreen(t)
	snap := snapshot(game.PhasePlaying)
	snap.Hazard = types.Point{X: 60, Y: 60}
	at := func() rune {
		r, _, _, _ := sim.GetContent(originX+1+3*2, originY+1+3)
		return r
	}

	s.Draw(snap)
	if at() == '▓' {
		t.Error("inactive hazard drawn")
	}

	snap.HazardActive = true
	s.Draw(snap)
	if at() != '▓' {
		t.Errorf("hazard rune = %q, want ▓", at())
	}
}

func TestDrawScreens(t *testing.T) {
	tests := []struct {
		name string
		snap func() game.Snapshot
		want []string
	}{
		{
			name: "menu",
			snap: func() game.Snapshot { return snapshot(game.PhaseMenu) },
			want: []string{"S start", "L leaderboard"},
		},
		{
			name: "name entry",
			snap: func() game.Snapshot {
				s := snapshot(game.PhaseMenu)
				s.Naming = true
				s.NameInput = "ada"
				return s
			},
			want: []string{"Enter your name:", "ada_"},
		},
		{
			name: "game over",
			snap: func() game.Snapshot {
				s := snapshot(game.PhaseGameOver)
				s.Score = 120
				s.LastCollision = manager.HazardCollision
				return s
			},
			want: []string{"GAME OVER (hit the hazard)", "final score 120", "R restart"},
		},
		{
			name: "empty leaderboard",
			snap: func() game.Snapshot { return snapshot(game.PhaseLeaderboard) },
			want: []string{"LEADERBOARD", "no scores yet"},
		},
		{
			name: "leaderboard",
			snap: func() game.Snapshot {
				s := snapshot(game.PhaseLeaderboard)
				s.Leaderboard = []leaderboard.Entry{{Score: 90, Name: "bob"}, {Score: 50, Name: "ada"}}
				return s
			},
			want: []string{" 1. bob", " 2. ada", "best 90"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, s := newSimScreen(t)
			s.Draw(tt.snap())
			text := screenText(sim)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("screen missing %q:\n%s", w, text)
				}
			}
		})
	}
}

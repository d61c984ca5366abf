package main

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"snejk/audio"
	"snejk/config"
	"snejk/game"
	"snejk/leaderboard"
	"snejk/stats"
	"snejk/ui"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[snejk] invalid config: %v", err)
	}

	width, height := ui.WindowSize(cfg.Grid)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, "SNEJK")
	if !rl.IsWindowReady() {
		log.Fatalf("[snejk] could not create window")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	player := audio.NewPlayer(0.5)
	cues := audio.InitOrSilent(player)
	defer player.Close()

	history, err := stats.NewGameStats(cfg.StatsPath)
	if err != nil {
		log.Printf("[snejk] stats unreadable, starting fresh: %v", err)
	}

	lb := leaderboard.New(leaderboard.NewJSONStore(cfg.LeaderboardPath))
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	ctrl := game.NewController(cfg, lb, history, cues, rng)

	player.PhaseChanged(ctrl.Phase(), ctrl.Phase()) // menu jingle on launch

	renderer := ui.NewRenderer()
	for ctrl.Running() {
		for _, in := range ui.PollInput(ctrl.Naming()) {
			ctrl.Handle(in)
		}
		ctrl.Update(time.Now())
		if !ctrl.Running() {
			break
		}
		renderer.Draw(ctrl.Snapshot())
	}
}

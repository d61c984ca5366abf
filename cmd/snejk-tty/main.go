package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
	"golang.org/x/term"

	"snejk/audio"
	"snejk/config"
	"snejk/game"
	"snejk/leaderboard"
	"snejk/stats"
	"snejk/tty"
)

const frameRate = 60

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("[snejk] stdout is not a terminal")
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[snejk] invalid config: %v", err)
	}

	// The terminal belongs to the board once tcell starts, so logs go to a file.
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err == nil {
		if f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	screen, err := tty.NewScreen()
	if err != nil {
		log.Fatalf("[snejk] %v", err)
	}
	defer screen.Fini()

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

	player.PhaseChanged(ctrl.Phase(), ctrl.Phase())

	quit := make(chan struct{})
	defer close(quit)
	events := screen.Events(quit)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	screen.Draw(ctrl.Snapshot())
	for ctrl.Running() {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				ctrl.Handle(tty.Translate(ev, ctrl.Naming()))
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			ctrl.Update(now)
			if ctrl.Running() {
				screen.Draw(ctrl.Snapshot())
			}
		}
	}
	log.Printf("[snejk] bye")
}

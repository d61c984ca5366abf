// Package config holds the tunables shared by the engine and both frontends.
package config

import (
	"fmt"
	"time"

	"snejk/game/types"
)

type Config struct {
	Grid             types.Grid
	StepDelay        time.Duration // Simulation step; frame pacing only
	LeaderboardDwell time.Duration // How long the leaderboard stays up
	LeaderboardPath  string
	StatsPath        string // Empty keeps session history in memory
	LogPath          string // Used by the terminal build, which owns stdout
	MaxNameLength    int
}

func Default() Config {
	return Config{
		Grid:             types.Grid{Width: types.BoardWidth, Height: types.BoardHeight},
		StepDelay:        100 * time.Millisecond,
		LeaderboardDwell: 3 * time.Second,
		LeaderboardPath:  "leaderboard.json",
		StatsPath:        "data/stats.json",
		LogPath:          "data/snejk.log",
		MaxNameLength:    16,
	}
}

// Validate rejects boards that do not divide into whole cells.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("board must be non-empty, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Width%types.CellSize != 0 || c.Grid.Height%types.CellSize != 0 {
		return fmt.Errorf("board %dx%d is not a multiple of cell size %d", c.Grid.Width, c.Grid.Height, types.CellSize)
	}
	if c.StepDelay <= 0 {
		return fmt.Errorf("step delay must be positive, got %v", c.StepDelay)
	}
	if c.MaxNameLength <= 0 {
		return fmt.Errorf("max name length must be positive, got %d", c.MaxNameLength)
	}
	return nil
}

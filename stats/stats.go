// Package stats keeps a bounded history of finished games.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatsFile  = "data/stats.json"
	MaxRecords = 500 // Oldest records are dropped beyond this
)

// GameRecord is the outcome of one finished game.
type GameRecord struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Duration is the wall time the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary aggregates the history for display.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MaxScore        int
	AverageDuration time.Duration
}

// GameStats holds the recorded games. An empty path keeps it in memory only.
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// NewGameStats loads path if it exists. A missing file starts empty; an
// unreadable one is reported and also starts empty.
func NewGameStats(path string) (*GameStats, error) {
	stats := &GameStats{
		Games: make([]GameRecord, 0),
		path:  path,
	}
	if path == "" {
		return stats, nil
	}
	if err := stats.loadFromFile(); err != nil {
		stats.Games = make([]GameRecord, 0)
		return stats, err
	}
	return stats, nil
}

// AddGame records a finished game and returns its record.
func (s *GameStats) AddGame(name string, score int, startTime, endTime time.Time) GameRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	game := GameRecord{
		UUID:      uuid.New().String(),
		Name:      name,
		Score:     score,
		StartTime: startTime,
		EndTime:   endTime,
	}
	s.Games = append(s.Games, game)
	if len(s.Games) > MaxRecords {
		s.Games = s.Games[len(s.Games)-MaxRecords:]
	}
	return game
}

// GetStats returns a copy of the recorded games, oldest first.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Games)
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	total := 0
	for _, game := range s.Games {
		total += game.Score
	}
	return float64(total) / float64(len(s.Games))
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.Games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (s *GameStats) GetAverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}
	var total time.Duration
	for _, game := range s.Games {
		total += game.Duration()
	}
	return total / time.Duration(len(s.Games))
}

func (s *GameStats) Summary() Summary {
	return Summary{
		GamesPlayed:     s.GetGamesPlayed(),
		AverageScore:    s.GetAverageScore(),
		MaxScore:        s.GetMaxScore(),
		AverageDuration: s.GetAverageDuration(),
	}
}

// SaveToFile writes the history as JSON. It is a no-op for in-memory stats.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(s.path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No games recorded yet
		}
		return fmt.Errorf("failed to read stats file: %w", err)
	}

	if err := json.Unmarshal(data, &s.Games); err != nil {
		return fmt.Errorf("failed to decode stats file: %w", err)
	}
	return nil
}

// Package leaderboard keeps the ranked top scores and persists them through a Store.
package leaderboard

import (
	"fmt"
	"log"
	"sort"

	"snejk/game/types"
)

// Entry is one ranked result.
type Entry struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// Store persists the full list of entries. Order on disk carries no meaning.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Leaderboard is always sorted by descending score and never holds more
// than MaxLeaderboardEntries entries.
type Leaderboard struct {
	entries []Entry
	store   Store
}

// New loads the stored entries. A store that cannot be read is replaced by
// an empty board and the failure is logged.
func New(store Store) *Leaderboard {
	lb := &Leaderboard{store: store}
	entries, err := store.Load()
	if err != nil {
		log.Printf("[snejk] leaderboard unreadable, starting empty: %v", err)
		return lb
	}
	lb.entries = rank(entries)
	return lb
}

// Insert adds a result, re-ranks, trims to the top entries and persists.
// Ties keep their insertion order. The in-memory board is updated even if
// saving fails.
func (lb *Leaderboard) Insert(score int, name string) error {
	next := make([]Entry, len(lb.entries), len(lb.entries)+1)
	copy(next, lb.entries)
	next = append(next, Entry{Score: score, Name: name})
	lb.entries = rank(next)

	if err := lb.store.Save(lb.Entries()); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Entries returns a copy of the ranked list.
func (lb *Leaderboard) Entries() []Entry {
	out := make([]Entry, len(lb.entries))
	copy(out, lb.entries)
	return out
}

func (lb *Leaderboard) Len() int {
	return len(lb.entries)
}

// Best returns the top score, or 0 on an empty board.
func (lb *Leaderboard) Best() int {
	if len(lb.entries) == 0 {
		return 0
	}
	return lb.entries[0].Score
}

func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > types.MaxLeaderboardEntries {
		entries = entries[:types.MaxLeaderboardEntries]
	}
	return entries
}

package leaderboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const DefaultFile = "leaderboard.json"

// JSONStore keeps the leaderboard as an indented JSON array on disk.
type JSONStore struct {
	Path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path}
}

// Load returns an empty list when the file does not exist yet.
func (s *JSONStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return entries, nil
}

// Save rewrites the whole file.
func (s *JSONStore) Save(entries []Entry) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create leaderboard directory: %w", err)
		}
	}

	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps entries in process. Saves counts persisted writes.
type MemoryStore struct {
	Entries []Entry
	Saves   int
	LoadErr error
	SaveErr error
}

func (m *MemoryStore) Load() ([]Entry, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]Entry, len(m.Entries))
	copy(out, m.Entries)
	return out, nil
}

func (m *MemoryStore) Save(entries []Entry) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Entries = make([]Entry, len(entries))
	copy(m.Entries, entries)
	m.Saves++
	return nil
}

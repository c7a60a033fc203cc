// Package stats persists the bot's counters and opt-out list.
//
// Counting happens here, once per confirmed correction, and never inside
// the mistake checker.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Stats holds the running counters. JSON keys match the bot's existing stats file.
type Stats struct {
	Good     int `json:"good"`
	Bad      int `json:"bad"`
	Mistakes int `json:"mistake counter"`
	Runs     int `json:"total runs"`
}

// Store reads and writes Stats in a JSON file
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by path. The file is created on first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Snapshot returns the current counters; a missing file reads as zero.
func (s *Store) Snapshot() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddMistakes adds n confirmed corrections
func (s *Store) AddMistakes(n int) (Stats, error) {
	return s.update(func(st *Stats) { st.Mistakes += n })
}

// AddRun counts one completed run
func (s *Store) AddRun() (Stats, error) {
	return s.update(func(st *Stats) { st.Runs++ })
}

// RecordFeedback counts a good or bad bot reply
func (s *Store) RecordFeedback(good bool) (Stats, error) {
	return s.update(func(st *Stats) {
		if good {
			st.Good++
		} else {
			st.Bad++
		}
	})
}

func (s *Store) update(fn func(*Stats)) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return Stats{}, err
	}

	fn(&st)

	if err := s.save(st); err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Store) load() (Stats, error) {
	var st Stats

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("read stats: %w", err)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode stats %s: %w", s.path, err)
	}
	return st, nil
}

// save writes a temp file next to path and renames it into place.
func (s *Store) save(st Stats) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stats-*.json")
	if err != nil {
		return fmt.Errorf("create temp stats: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close stats: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace stats: %w", err)
	}
	return nil
}

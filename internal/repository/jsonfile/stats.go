package jsonfile

import (
	"sync"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
)

// StatsStore implements repository.StatsRepository over a single JSON
// counter document
type StatsStore struct {
	mu    sync.RWMutex
	path  string
	stats domain.Stats
}

// NewStatsStore loads the counter document at path
func NewStatsStore(path string) (*StatsStore, error) {
	s := &StatsStore{
		path:  path,
		stats: domain.NewStats(),
	}
	if err := readDocument(path, &s.stats); err != nil {
		return nil, err
	}
	// Maps may come back nil from an empty or partial document
	if s.stats.Counters == nil {
		s.stats.Counters = make(map[string]int)
	}
	if s.stats.Languages == nil {
		s.stats.Languages = make(map[domain.Language]int)
	}
	return s, nil
}

// Add applies delta to the named counter and persists. Counters never
// go below zero: decrementing an absent or empty counter is a no-op.
func (s *StatsStore) Add(name string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stats.Counters[name] + delta
	if next < 0 {
		next = 0
	}
	s.stats.Counters[name] = next
	return writeDocument(s.path, s.stats)
}

// AddLanguage applies delta to the per-language user bucket, clamped at
// zero the same way as Add
func (s *StatsStore) AddLanguage(lang domain.Language, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stats.Languages[lang] + delta
	if next < 0 {
		next = 0
	}
	s.stats.Languages[lang] = next
	return writeDocument(s.path, s.stats)
}

// Snapshot returns a read-only copy of the counters
func (s *StatsStore) Snapshot() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats.Clone()
}

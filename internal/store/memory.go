package store

import (
	"errors"
	"sync"

	"github.com/i474232898/voice-weather/internal/poller"
)

// ErrNotFound is returned when no observation has been recorded yet.
var ErrNotFound = errors.New("no observations recorded")

// MemoryStore is a concurrency-safe, bounded in-memory history of poller
// observations. The automation conditions read it; the poller writes it.
// Process memory only, nothing is persisted.
type MemoryStore struct {
	mu sync.RWMutex

	observations []poller.Observation
	maxHistory   int
}

// NewMemoryStore creates a store keeping at most maxHistory observations.
// maxHistory <= 0 means unlimited.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{maxHistory: maxHistory}
}

// Append records a new observation and enforces the retention bound.
func (s *MemoryStore) Append(obs poller.Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observations = append(s.observations, obs)
	if s.maxHistory > 0 && len(s.observations) > s.maxHistory {
		over := len(s.observations) - s.maxHistory
		s.observations = s.observations[over:]
	}
}

// Latest returns the most recent observation.
func (s *MemoryStore) Latest() (poller.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.observations) == 0 {
		return poller.Observation{}, ErrNotFound
	}
	return s.observations[len(s.observations)-1], nil
}

// LastTwo returns the previous and latest observations, for trend checks.
func (s *MemoryStore) LastTwo() (prev, latest poller.Observation, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.observations)
	if n < 2 {
		return poller.Observation{}, poller.Observation{}, ErrNotFound
	}
	return s.observations[n-2], s.observations[n-1], nil
}

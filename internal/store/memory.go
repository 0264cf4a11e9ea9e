package store

import (
	"sync"

	"github.com/dshills/reckon/internal/calc"
)

// MemStore keeps history in memory. It is used for ephemeral sessions
// and as a test double for the CSV store.
type MemStore struct {
	mu      sync.Mutex
	history []calc.Calculation
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns a copy of the stored history.
func (s *MemStore) Load() ([]calc.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]calc.Calculation, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Save replaces the stored history with a copy of the given one.
func (s *MemStore) Save(history []calc.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]calc.Calculation, len(history))
	copy(s.history, history)
	return nil
}

package state

import "sync"

// MemoryStore keeps the record in process memory. Used for headless runs
// that should not touch the user's state file, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	payload Payload
	saves   int
}

// NewMemoryStore creates a store, optionally seeded with an initial record.
func NewMemoryStore(seed Payload) *MemoryStore {
	s := &MemoryStore{}
	if seed != nil {
		s.payload = Payload{}.Merge(seed)
	}
	return s
}

// Load implements Store.
func (s *MemoryStore) Load() (Payload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.payload == nil {
		return nil, ErrNoState
	}
	return Payload{}.Merge(s.payload), nil
}

// Save implements Store.
func (s *MemoryStore) Save(patch Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = s.payload.Merge(patch)
	s.saves++
	return nil
}

// Saves reports how many writes the store has received.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

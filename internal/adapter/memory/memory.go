// Package memory implements an in-memory record store for development and
// testing.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"nutritrack/internal/domain"
)

// Ensure interface is met.
var _ domain.RecordStore = (*Store)(nil)

// Store keeps serialized records in a map. Records go through a JSON
// round-trip so callers always get value copies, matching the durable
// adapters.
type Store struct {
	mu      sync.Mutex
	records map[string][]byte
}

// New creates an empty in-memory record store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Load unmarshals the named record into out and reports whether it existed.
func (s *Store) Load(ctx context.Context, name string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.records[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Save serializes v under name, replacing any previous value.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = data
	return nil
}

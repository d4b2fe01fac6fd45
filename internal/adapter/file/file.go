// Package file implements durable record persistence as JSON files in a
// local data directory, one file per named record.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nutritrack/internal/domain"
)

// Ensure interface is met.
var _ domain.RecordStore = (*Store)(nil)

// Store persists each record as <dir>/<name>.json. Writes are atomic
// (temp file + rename) so a crash mid-write never leaves a truncated
// record behind.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file backing the named record. Useful for watching a
// record for external edits.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads and unmarshals the named record into out. A missing file
// means the record does not exist yet and is not an error.
func (s *Store) Load(ctx context.Context, name string, out any) (bool, error) {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode record %q: %w", name, err)
	}
	return true, nil
}

// Save marshals v and atomically replaces the named record's file.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

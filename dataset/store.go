package dataset

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/worldmbti/insights/ranking"
)

// Store holds the default table. Readers get an immutable snapshot; Reload swaps in
// a freshly parsed table when the file on disk changes.
type Store struct {
	path    string
	table   atomic.Pointer[ranking.Table]
	mu      sync.Mutex
	modTime time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Table returns the current snapshot, or nil before the first successful load.
func (s *Store) Table() *ranking.Table {
	return s.table.Load()
}

// Load parses the file unconditionally and makes it the current table.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("stat dataset: %w", err)
	}
	return s.load(info.ModTime())
}

// Reload re-reads the file if its modification time changed since the last load.
// On failure the previous table stays current.
func (s *Store) Reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, err := os.Stat(s.path)
	if err != nil {
		return false, fmt.Errorf("stat dataset: %w", err)
	}
	if s.table.Load() != nil && info.ModTime().Equal(s.modTime) {
		return false, nil
	}
	if err := s.load(info.ModTime()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) load(modTime time.Time) error {
	t, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	if len(t.Types) == 0 {
		return fmt.Errorf("dataset %s has no type columns", s.path)
	}
	s.table.Store(t)
	s.modTime = modTime
	log.Printf("Loaded dataset %s: %d countries, %d types", s.path, t.Len(), len(t.Types))
	return nil
}

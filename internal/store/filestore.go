// Package store persists the deduplicated search history as a single JSON
// document on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no history record matches the given id.
	ErrNotFound = errors.New("no history record with that id")

	// ErrPersist is returned when writing the history file fails. The
	// in-memory result of a failed write is not committed.
	ErrPersist = errors.New("failed to persist search history")
)

// City is one persisted search-history record. The id is assigned once at
// creation and never changes; the name keeps the exact casing the user
// submitted on first search.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FileStore owns the on-disk history document and is its only writer.
//
// Every mutation is a full read-modify-write cycle against the file; no
// in-memory state survives across calls. The mutex serializes those cycles so
// concurrent requests cannot clobber each other's writes.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// List returns all history records in insertion order. A missing or
// unparsable file means an empty history, never an error.
func (s *FileStore) List() []City {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add records a city name unless a case-insensitively equal name is already
// present, in which case the call is a no-op returning the unchanged list.
// New records get a fresh uuid and are appended, preserving insertion order.
func (s *FileStore) Add(name string) ([]City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cities := s.read()
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return cities, nil
		}
	}

	cities = append(cities, City{ID: uuid.NewString(), Name: name})
	if err := s.write(cities); err != nil {
		return nil, err
	}

	s.logger.Info("added city to search history", zap.String("city", name))
	return cities, nil
}

// Remove deletes the record whose id matches exactly and returns the
// remaining list. An unmatched id yields ErrNotFound with the file untouched.
func (s *FileStore) Remove(id string) ([]City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cities := s.read()
	kept := make([]City, 0, len(cities))
	for _, c := range cities {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	// A no-op filter means the id was never there.
	if len(kept) == len(cities) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.write(kept); err != nil {
		return nil, err
	}

	s.logger.Info("removed city from search history", zap.String("id", id))
	return kept, nil
}

func (s *FileStore) read() []City {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading history file failed; treating as empty",
				zap.String("path", s.path),
				zap.Error(err))
		}
		return nil
	}

	var cities []City
	if err := json.Unmarshal(data, &cities); err != nil {
		s.logger.Warn("history file is not valid JSON; treating as empty",
			zap.String("path", s.path),
			zap.Error(err))
		return nil
	}
	return cities
}

func (s *FileStore) write(cities []City) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	data, err := json.MarshalIndent(cities, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

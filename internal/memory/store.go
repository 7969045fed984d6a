package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorruptStore marks a store file that exists but cannot be decoded.
// Recovery (treat as empty vs. abort) is the caller's decision.
var ErrCorruptStore = errors.New("corrupt translation memory store")

// Store is a translation memory: a persistent mapping from exact source
// text to its translation. Lookups are exact-match only, no normalization.
// Mutations are kept in memory until Save is called.
type Store struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

// Load reads the store at path. A missing file yields an empty store; a
// present but unparsable file fails with ErrCorruptStore.
func Load(path string) (*Store, error) {
	store := &Store{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read memory store: %w", err)
	}

	if err := json.Unmarshal(data, &store.entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
	}
	if store.entries == nil {
		store.entries = make(map[string]string)
	}

	return store, nil
}

// Get looks up the translation for the exact source text.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok
}

// Put inserts or overwrites the translation for the source text.
// The change is not persisted until Save.
func (s *Store) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the in-memory mapping. Call Save to persist.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
}

// Save writes the full mapping to the store file, replacing prior
// content. The write goes through a temp file so a failure never
// truncates the existing store.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode memory store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create memory directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".memory-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write memory store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace memory store: %w", err)
	}

	return nil
}

// Path returns the file path this store persists to.
func (s *Store) Path() string {
	return s.path
}

package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileStore keeps all records in a single JSON file on disk. It is the
// local-deployment counterpart of the Postgres backend and doubles as the
// store used by tests. All access goes through one mutex; writes rewrite
// the whole file via a temp-file rename.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewFileStore opens (or creates) the data file at path
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", path, err)
		}
	}

	return s, nil
}

// persist writes the full map to disk. Caller must hold the mutex.
func (s *FileStore) persist() error {
	encoded, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Get returns the value stored under key
func (s *FileStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value
func (s *FileStore) Set(_ context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = encoded
	return s.persist()
}

// Delete removes key; deleting a missing key is a no-op
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persist()
}

// GetByPrefix returns the values of all keys starting with prefix,
// in ascending key order
func (s *FileStore) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var values []json.RawMessage
	for _, key := range keys {
		values = append(values, s.data[key])
	}
	return values, nil
}

// Reset removes every key
func (s *FileStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]json.RawMessage)
	return s.persist()
}

// Close is a no-op; every mutation is flushed as it happens
func (s *FileStore) Close() error {
	return nil
}

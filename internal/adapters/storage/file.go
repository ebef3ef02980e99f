package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// FileStore is a file-backed implementation of the domain.KVStore port: a
// single JSON object on disk, rewritten on every mutation. Last write wins;
// it is the process-local analog of browser storage and the default backend.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger domain.Logger
}

// NewFileStore creates a FileStore persisting to path. The file is created
// lazily on the first Set; a missing file reads as an empty store. A file
// that cannot be parsed is discarded rather than poisoning every read.
func NewFileStore(path string, logger domain.Logger) *FileStore {
	if path == "" {
		panic("path cannot be empty in NewFileStore")
	}
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) load(ctx context.Context) map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn(ctx, "Failed to read state file, starting empty", "path", s.path, "error", err.Error())
		}
		return map[string]string{}
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// Corrupted state is dropped, the same way corrupted browser storage is
		// deleted instead of crashing the storefront.
		s.logger.Warn(ctx, "State file is corrupted, discarding it", "path", s.path, "error", err.Error())
		_ = os.Remove(s.path)
		return map[string]string{}
	}
	return values
}

func (s *FileStore) flush(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file '%s': %w", s.path, err)
	}
	return nil
}

// Get returns the value stored under key, or domain.ErrKeyNotFound.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.load(ctx)[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return val, nil
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.load(ctx)
	values[key] = value
	return s.flush(values)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.load(ctx)
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.flush(values)
}

package storage

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileStore provides thread-safe file-based persistence, one file per key.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileStore creates a new file store rooted at dataDir
func NewFileStore(dataDir string) (*FileStore, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dataDir, url.QueryEscape(key)+".json")
}

// Get reads the file stored for key
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrBadKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			// Never written, not an error
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set replaces the file stored for key
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrBadKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to temp file first, then rename (atomic operation)
	target := s.path(key)
	tempFile := target + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	if _, err := file.Write(value); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, target)
}

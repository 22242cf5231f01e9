// Package storage provides the persistence drivers: StateStore for the
// serialized state tree and ArtifactStore for finished PDF exports.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"resumeforge/internal/store"
)

// ErrStateNotFound is returned by Load when no blob has been saved yet.
var ErrStateNotFound = errors.New("state blob not found")

// StateStore persists the whole state tree as one opaque blob under the
// resume-forge-storage key. Last write wins; no transactional guarantee is
// needed for a single-user state this small.
type StateStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// FileStateStore keeps the blob in one JSON file under the data directory.
type FileStateStore struct {
	path string
}

// NewFileStateStore creates the data directory if needed.
func NewFileStateStore(dataDir string) (*FileStateStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dataDir, err)
	}
	return &FileStateStore{
		path: filepath.Join(dataDir, store.StorageKey+".json"),
	}, nil
}

// Load reads the persisted blob, ErrStateNotFound when none exists.
func (s *FileStateStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Save writes the blob atomically: temp file plus rename, so a crash
// mid-write never leaves a truncated state file behind.
func (s *FileStateStore) Save(_ context.Context, blob []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write state temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

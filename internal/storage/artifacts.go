package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrArtifactNotFound is returned when a requested export artifact does not
// exist (never produced, or already cleaned up).
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactStore holds finished PDF exports. The local driver serves bytes
// directly; the MinIO driver can hand out presigned URLs instead.
type ArtifactStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns a direct download URL when the driver supports one,
	// ErrNoDirectURL otherwise (the caller then streams via Get).
	URL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ErrNoDirectURL signals that the driver cannot mint download URLs.
var ErrNoDirectURL = errors.New("artifact store has no direct urls")

// LocalArtifactStore keeps artifacts as plain files under one directory.
type LocalArtifactStore struct {
	dir string
}

func NewLocalArtifactStore(dir string) (*LocalArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifacts dir %q: %w", dir, err)
	}
	return &LocalArtifactStore{dir: dir}, nil
}

// keyPath maps an artifact key to a path inside the store directory,
// rejecting traversal outside it.
func (s *LocalArtifactStore) keyPath(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty artifact key")
	}
	path := filepath.Join(s.dir, clean)
	if !strings.HasPrefix(path, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("artifact key %q escapes store dir", key)
	}
	return path, nil
}

func (s *LocalArtifactStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create artifact temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

func (s *LocalArtifactStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	return f, nil
}

// Delete removes an artifact; a missing key is treated as success.
func (s *LocalArtifactStore) Delete(_ context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove artifact: %w", err)
	}
	return nil
}

func (s *LocalArtifactStore) URL(_ context.Context, _ string, _ time.Duration) (string, error) {
	return "", ErrNoDirectURL
}

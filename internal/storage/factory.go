package storage

import (
	"fmt"

	"resumeforge/internal/config"
)

// NewArtifactStore builds the artifact driver named by the config.
func NewArtifactStore(cfg *config.Config) (ArtifactStore, error) {
	switch cfg.Artifacts.Driver {
	case "local":
		return NewLocalArtifactStore(cfg.Artifacts.Dir)
	case "minio":
		return NewMinIOArtifactStore(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown artifacts driver %q", cfg.Artifacts.Driver)
	}
}

package database

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/storage"
)

// NewStateStore builds the state driver named by the config. It lives here
// rather than in storage because the gorm driver pulls in the database
// layer, which itself depends on storage.
func NewStateStore(cfg *config.Config, redisClient *redis.Client) (storage.StateStore, error) {
	switch cfg.State.Driver {
	case "file":
		return storage.NewFileStateStore(cfg.State.DataDir)
	case "redis":
		return storage.NewRedisStateStore(redisClient), nil
	case "gorm":
		db, err := InitDatabase(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		return NewGormStateStore(db)
	default:
		return nil, fmt.Errorf("unknown state driver %q", cfg.State.Driver)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/api"
	"resumeforge/internal/config"
	"resumeforge/internal/database"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.RedisAddr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	states, err := database.NewStateStore(cfg, redisClient)
	if err != nil {
		log.Fatalf("init state store: %v", err)
	}
	log.Printf("state store ready, driver=%s", cfg.State.Driver)

	artifacts, err := storage.NewArtifactStore(cfg)
	if err != nil {
		log.Fatalf("init artifact store: %v", err)
	}
	log.Printf("artifact store ready, driver=%s", cfg.Artifacts.Driver)

	st := store.New(logger, states)
	blob, err := states.Load(context.Background())
	switch {
	case err == nil:
		if err := st.Restore(blob); err != nil {
			logger.Warn("persisted state unreadable, starting from defaults", slog.Any("error", err))
		}
	case errors.Is(err, storage.ErrStateNotFound):
		log.Printf("no persisted state, starting from defaults")
	default:
		log.Fatalf("load state: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.RedisAddr()})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
	}()

	router := api.NewRouter(logger)
	api.RegisterRoutes(
		router,
		st,
		asynqClient,
		redisClient,
		artifacts,
		logger,
		cfg.API.ClamdAddr,
		cfg.Export.MaxPerMinute,
	)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("api listening on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}

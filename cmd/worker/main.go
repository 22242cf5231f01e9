package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/database"
	"resumeforge/internal/metrics"
	"resumeforge/internal/storage"
	"resumeforge/internal/tasks"
	"resumeforge/internal/worker"
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
	log.Printf("state store ready for worker, driver=%s", cfg.State.Driver)

	artifacts, err := storage.NewArtifactStore(cfg)
	if err != nil {
		log.Fatalf("init artifact store: %v", err)
	}
	log.Printf("artifact store ready, driver=%s", cfg.Artifacts.Driver)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.RedisAddr()}
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
	})

	exportHandler := worker.NewExportTaskHandler(states, artifacts, redisClient, logger, cfg.Export.ChromeBin)

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.Handle(tasks.TypePDFExport, exportHandler)

	logger.Info("worker service started", slog.String("redis_addr", cfg.Redis.RedisAddr()))
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}

// Package worker consumes export jobs: it assembles the current document,
// rasterizes it in headless Chromium, slices the raster into A4 pages and
// stores the finished PDF as a downloadable artifact.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/errcode"
	"resumeforge/internal/render"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
	"resumeforge/internal/tasks"
)

// ExportTaskHandler consumes PDF export tasks.
type ExportTaskHandler struct {
	states      storage.StateStore
	artifacts   storage.ArtifactStore
	redisClient *redis.Client
	logger      *slog.Logger
	chromeBin   string
}

// NewExportTaskHandler creates the task handler.
func NewExportTaskHandler(
	states storage.StateStore,
	artifacts storage.ArtifactStore,
	redisClient *redis.Client,
	logger *slog.Logger,
	chromeBin string,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		states:      states,
		artifacts:   artifacts,
		redisClient: redisClient,
		logger:      logger,
		chromeBin:   chromeBin,
	}
}

// ProcessTask implements asynq.Handler.
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("export_id", payload.ExportID),
	)
	log.Info("Starting PDF export task...")

	failCode := errcode.SystemError
	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		msg := strings.TrimSpace(retErr.Error())
		h.setStatus(ctx, log, payload.ExportID, tasks.ExportStatus{
			Status:       tasks.StatusError,
			ErrorCode:    failCode,
			ErrorMessage: msg,
		})
		notify := ExportNotifyMessage{
			Status:        tasks.StatusError,
			ExportID:      payload.ExportID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     failCode,
			ErrorMessage:  msg,
		}
		if err := h.publishNotify(ctx, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	h.setStatus(ctx, log, payload.ExportID, tasks.ExportStatus{Status: tasks.StatusProcessing})

	state, err := h.loadState(ctx)
	if err != nil {
		failCode = errcode.StorageFailed
		log.Error("load state failed", slog.Any("error", err))
		return err
	}

	htmlContent, err := render.FromState(state)
	if err != nil {
		failCode = errcode.RenderFailed
		log.Error("render document failed", slog.Any("error", err))
		return err
	}

	raster, err := rasterizeHTML(htmlContent, h.chromeBin)
	if err != nil {
		failCode = errcode.RenderFailed
		if errors.Is(err, errSurfaceMissing) {
			failCode = errcode.SurfaceMissing
		}
		log.Error("rasterize document failed", slog.Any("error", err))
		return err
	}

	if cfg, err := png.DecodeConfig(bytes.NewReader(raster)); err == nil {
		log.Info("document rasterized",
			slog.Int("raster_height", cfg.Height),
			slog.Int("pages", pageCount(cfg.Height)),
		)
	}

	pdfBytes, err := paginate(raster)
	if err != nil {
		failCode = errcode.RenderFailed
		log.Error("paginate raster failed", slog.Any("error", err))
		return err
	}

	fileName := exportFileName(state.Personal.LastName, time.Now())
	key := fmt.Sprintf("exports/%s/%s", payload.ExportID, fileName)
	reader := bytes.NewReader(pdfBytes)
	if err := h.artifacts.Put(ctx, key, reader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		failCode = errcode.StorageFailed
		log.Error("store pdf artifact failed", slog.Any("error", err))
		return err
	}

	h.setStatus(ctx, log, payload.ExportID, tasks.ExportStatus{
		Status: tasks.StatusCompleted,
		File:   fileName,
		Key:    key,
	})

	notify := ExportNotifyMessage{
		Status:        tasks.StatusCompleted,
		ExportID:      payload.ExportID,
		CorrelationID: payload.CorrelationID,
		File:          fileName,
		ErrorCode:     errcode.OK,
	}
	if err := h.publishNotify(ctx, notify); err != nil {
		log.Error("publish export notification failed", slog.Any("error", err))
		return err
	}

	log.Info("PDF export task completed successfully.")
	return nil
}

// loadState reads and decodes the persisted state tree. A missing blob is
// not an error; exports of a fresh install produce the default document.
func (h *ExportTaskHandler) loadState(ctx context.Context) (store.State, error) {
	blob, err := h.states.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrStateNotFound) {
			return store.DefaultState(), nil
		}
		return store.State{}, err
	}
	return store.DecodeState(blob)
}

// exportFileName builds the download name, ResumeForge_<LastName>_<date>.pdf
// with "Resume" standing in when no last name is set.
func exportFileName(lastName string, now time.Time) string {
	name := strings.TrimSpace(lastName)
	if name == "" {
		name = "Resume"
	}
	return fmt.Sprintf("ResumeForge_%s_%s.pdf", name, now.Format("2006-01-02"))
}

func (h *ExportTaskHandler) setStatus(ctx context.Context, log *slog.Logger, exportID string, st tasks.ExportStatus) {
	st.UpdatedAt = time.Now().Unix()
	data, err := json.Marshal(st)
	if err != nil {
		log.Error("marshal export status failed", slog.Any("error", err))
		return
	}
	if err := h.redisClient.Set(ctx, tasks.StatusKey(exportID), data, tasks.StatusTTL).Err(); err != nil {
		log.Error("write export status failed", slog.Any("error", err))
	}
}

func (h *ExportTaskHandler) publishNotify(ctx context.Context, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	if err := h.redisClient.Publish(ctx, NotifyChannel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", NotifyChannel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}

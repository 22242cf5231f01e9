package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/storage"
	"resumeforge/internal/tasks"
)

// ExportHandler enqueues PDF export jobs and serves their status and the
// finished artifacts.
type ExportHandler struct {
	asynqClient  *asynq.Client
	redisClient  *redis.Client
	artifacts    storage.ArtifactStore
	logger       *slog.Logger
	maxPerMinute int
}

// NewExportHandler constructs an ExportHandler. maxPerMinute <= 0 disables
// the enqueue rate limit.
func NewExportHandler(
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	artifacts storage.ArtifactStore,
	logger *slog.Logger,
	maxPerMinute int,
) *ExportHandler {
	return &ExportHandler{
		asynqClient:  asynqClient,
		redisClient:  redisClient,
		artifacts:    artifacts,
		logger:       logger,
		maxPerMinute: maxPerMinute,
	}
}

// EnqueueExport queues a PDF export of the current document and returns 202
// with the job id immediately.
func (h *ExportHandler) EnqueueExport(c *gin.Context) {
	ctx := c.Request.Context()

	if h.maxPerMinute > 0 {
		count, err := incrWithTTL(ctx, h.redisClient, "export_rate", time.Minute)
		if err != nil {
			h.logger.Error("export rate counter failed", slog.Any("error", err))
		} else if count > int64(h.maxPerMinute) {
			TooManyRequests(c, "too many export requests, try again shortly")
			return
		}
	}

	exportID := uuid.NewString()
	correlationID := middleware.GetCorrelationID(c)

	task, err := tasks.NewPDFExportTask(exportID, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	h.setStatus(ctx, exportID, tasks.ExportStatus{Status: tasks.StatusQueued})

	if _, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		Internal(c, "failed to enqueue pdf export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "PDF export request accepted",
		"export_id": exportID,
	})
}

// GetExportStatus returns the job's progress record.
func (h *ExportHandler) GetExportStatus(c *gin.Context) {
	id := c.Param("id")
	data, err := h.redisClient.Get(c.Request.Context(), tasks.StatusKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			NotFound(c, "export not found")
			return
		}
		Internal(c, "failed to read export status")
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// DownloadExport serves a finished PDF, redirecting to a presigned URL when
// the artifact store can mint one and streaming the bytes otherwise.
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	data, err := h.redisClient.Get(ctx, tasks.StatusKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			NotFound(c, "export not found")
			return
		}
		Internal(c, "failed to read export status")
		return
	}

	var status tasks.ExportStatus
	if err := json.Unmarshal(data, &status); err != nil {
		Internal(c, "failed to decode export status")
		return
	}
	if status.Status != tasks.StatusCompleted || status.Key == "" {
		Conflict(c, "export not ready")
		return
	}

	if url, err := h.artifacts.URL(ctx, status.Key, 5*time.Minute); err == nil {
		c.Redirect(http.StatusFound, url)
		return
	} else if !errors.Is(err, storage.ErrNoDirectURL) {
		h.logger.Error("presign export url failed", slog.Any("error", err))
		Internal(c, "failed to generate download link")
		return
	}

	reader, err := h.artifacts.Get(ctx, status.Key)
	if err != nil {
		if errors.Is(err, storage.ErrArtifactNotFound) {
			NotFound(c, "artifact not found")
			return
		}
		Internal(c, "failed to open artifact")
		return
	}
	defer reader.Close()

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		Internal(c, "failed to read artifact")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", status.File))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *ExportHandler) setStatus(ctx context.Context, exportID string, st tasks.ExportStatus) {
	st.UpdatedAt = time.Now().Unix()
	data, err := json.Marshal(st)
	if err != nil {
		h.logger.Error("marshal export status failed", slog.Any("error", err))
		return
	}
	if err := h.redisClient.Set(ctx, tasks.StatusKey(exportID), data, tasks.StatusTTL).Err(); err != nil {
		h.logger.Error("write export status failed", slog.Any("error", err))
	}
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/render"
	"resumeforge/internal/store"
)

// PreviewHandler serves the assembled document as HTML, the same page the
// export worker rasterizes.
type PreviewHandler struct {
	store *store.Store
}

// NewPreviewHandler constructs a PreviewHandler.
func NewPreviewHandler(st *store.Store) *PreviewHandler {
	return &PreviewHandler{store: st}
}

// GetPreview renders the current document.
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	htmlContent, err := render.FromState(h.store.Snapshot())
	if err != nil {
		log := middleware.LoggerFromContext(c)
		log.Error("render preview failed", slog.Any("error", err))
		Internal(c, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlContent))
}

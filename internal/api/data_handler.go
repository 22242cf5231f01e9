package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/api/middleware"
	"resumeforge/internal/errcode"
	"resumeforge/internal/store"
)

// maxImportSize bounds the import payload; the whole state tree of a heavy
// document is well under this.
const maxImportSize = 10 << 20

// DataHandler serves whole-document export, import and reset.
type DataHandler struct {
	store *store.Store
}

// NewDataHandler constructs a DataHandler.
func NewDataHandler(st *store.Store) *DataHandler {
	return &DataHandler{store: st}
}

// ExportData streams the serialized document as a JSON download.
func (h *DataHandler) ExportData(c *gin.Context) {
	data, err := h.store.ExportData()
	if err != nil {
		Internal(c, "failed to serialize data")
		return
	}

	fileName := fmt.Sprintf("resume-forge-data-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/json", []byte(data))
}

// ImportData replaces the document with an uploaded export. A malformed
// payload leaves the current state untouched and reports the parse problem.
func (h *DataHandler) ImportData(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		BadRequest(c, "failed to read import payload")
		return
	}

	if err := h.store.ImportData(c.Request.Context(), string(body)); err != nil {
		log := middleware.LoggerFromContext(c)
		log.Warn("import rejected", slog.Any("error", err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "import failed, data unchanged",
			"error_code": errcode.ImportFailed,
			"detail":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.store.Snapshot())
}

// ResetAll restores the factory defaults. Irreversible; the UI asks for
// confirmation, the API does not.
func (h *DataHandler) ResetAll(c *gin.Context) {
	if err := h.store.ResetAll(c.Request.Context()); err != nil {
		Internal(c, "failed to reset data")
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot())
}

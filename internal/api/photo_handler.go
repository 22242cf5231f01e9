package api

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"

	"resumeforge/internal/errcode"
	"resumeforge/internal/store"
)

// maxPhotoSize is the hard limit for profile photos. Oversized uploads are
// rejected before any state is touched.
const maxPhotoSize = 2 << 20

// PhotoHandler manages the profile photo. The photo is stored inline as a
// data URI so the document stays fully self-contained.
type PhotoHandler struct {
	store     *store.Store
	logger    *slog.Logger
	clamdAddr string
}

// NewPhotoHandler constructs a PhotoHandler. clamdAddr may be empty, which
// disables scanning.
func NewPhotoHandler(st *store.Store, logger *slog.Logger, clamdAddr string) *PhotoHandler {
	return &PhotoHandler{store: st, logger: logger, clamdAddr: clamdAddr}
}

// UploadPhoto validates and inlines a JPEG or PNG profile photo.
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		BadRequest(c, "missing photo")
		return
	}

	if file.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "image size must be less than 2MB",
			"error_code": errcode.PhotoRejected,
		})
		return
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open photo")
		return
	}
	defer reader.Close()

	data := make([]byte, file.Size)
	if _, err := io.ReadFull(reader, data); err != nil {
		Internal(c, "failed to read photo")
		return
	}

	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "photo must be a JPEG or PNG image",
			"error_code": errcode.PhotoRejected,
		})
		return
	}

	if h.clamdAddr != "" {
		clean, err := h.scanPhoto(data)
		if err != nil {
			h.logger.Error("scan photo", slog.Any("error", err))
			Internal(c, "failed to scan photo")
			return
		}
		if !clean {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "malicious file detected",
				"error_code": errcode.PhotoRejected,
			})
			return
		}
	}

	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	if err := h.store.SetPersonalField(c.Request.Context(), "photoURI", uri); err != nil {
		Internal(c, "failed to store photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoURI": uri})
}

// RemovePhoto clears the profile photo.
func (h *PhotoHandler) RemovePhoto(c *gin.Context) {
	if err := h.store.SetPersonalField(c.Request.Context(), "photoURI", ""); err != nil {
		Internal(c, "failed to remove photo")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PhotoHandler) scanPhoto(data []byte) (clean bool, err error) {
	clamdClient := clamd.NewClamd(h.clamdAddr)

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(bytes.NewReader(data), abortChan)
	if err != nil {
		return false, err
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}

package api

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPhotoUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func performUpload(t *testing.T, st *store.Store, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewPhotoHandler(st, discardLogger(), "")

	body, contentType := newPhotoUpload(t, filename, content)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/photo", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.UploadPhoto(c)
	return w
}

func TestUploadPhotoPNG(t *testing.T) {
	st := newTestStore(t)
	content := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	w := performUpload(t, st, "me.png", content)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	uri := st.Snapshot().Personal.PhotoURI
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("photoURI = %q", uri)
	}
}

func TestUploadPhotoRejectsUnknownFormat(t *testing.T) {
	st := newTestStore(t)

	w := performUpload(t, st, "me.gif", []byte("GIF89a not welcome here"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().Personal.PhotoURI; got != "" {
		t.Errorf("photoURI = %q, rejected upload must not touch state", got)
	}
}

func TestUploadPhotoRejectsOversize(t *testing.T) {
	st := newTestStore(t)
	content := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, maxPhotoSize)...)

	w := performUpload(t, st, "huge.png", content)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestRemovePhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := newTestStore(t)
	w := performUpload(t, st, "me.png", append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...))
	if w.Code != http.StatusOK {
		t.Fatalf("seed upload: %d", w.Code)
	}

	h := NewPhotoHandler(st, discardLogger(), "")
	w = httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/v1/photo", nil)

	h.RemovePhoto(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
	if got := st.Snapshot().Personal.PhotoURI; got != "" {
		t.Errorf("photoURI = %q after removal", got)
	}
}

package controller

import (
	"bytes"
	"center_backend/internal/config"
	"center_backend/internal/model"
	"center_backend/internal/service"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	root := t.TempDir()
	storage := service.NewStorageService(&config.StorageConfig{Type: "local", LocalPath: root, URLPrefix: "upload/", MaxUploadMB: 1})
	c := NewUploadController(storage)

	r := gin.New()
	r.POST("/api/upload", c.Upload)
	r.GET("/upload/*filepath", c.Serve)
	return r, root
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadController_UploadAndServe(t *testing.T) {
	r, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "file", "a.gif", []byte("GIF89a\x01\x00\x01\x00"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status int `json:"status"`
		Data   struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Status)
	assert.Regexp(t, `^upload/[0-9a-f]{32}\.gif$`, resp.Data.Value)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+resp.Data.Value, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, "GIF89a\x01\x00\x01\x00", w.Body.String())
}

func TestUploadController_RejectsNonImage(t *testing.T) {
	r, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "file", "a.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upload", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadController_ServeRejectsTraversal(t *testing.T) {
	r, root := newUploadRouter(t)
	secret := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o600))
	t.Cleanup(func() { os.Remove(secret) })

	for _, path := range []string{"/upload/missing.png", "/upload/a/b.png", "/upload/..%2fsecret.txt"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.NotContains(t, w.Body.String(), "secret")
	}
}

func TestCollectRequest_Payload(t *testing.T) {
	image := CollectRequest{TaskType: string(model.CollectImage), Image: "upload/x.png", Content: "ignored"}
	assert.Equal(t, "upload/x.png", image.Payload())

	text := CollectRequest{TaskType: string(model.CollectText), Image: "ignored", Content: "hello"}
	assert.Equal(t, "hello", text.Payload())
}

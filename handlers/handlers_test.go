package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gamemedia/models"
	"gamemedia/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	return newTestRouterAt(t, t.TempDir())
}

func newTestRouterAt(t *testing.T, bucketDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbc, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test DB: %v", err)
	}
	if err := models.Init(dbc); err != nil {
		t.Fatalf("cannot migrate test DB: %v", err)
	}
	provider, err := storage.NewProvider(dbc, bucketDir)
	if err != nil {
		t.Fatalf("cannot create storage provider: %v", err)
	}

	scores := NewScoreStore(dbc)
	sprites := NewSpriteStore(dbc, provider)
	audio := NewAudioStore(dbc, provider)

	router := gin.New()
	router.GET("/", Hello)
	router.GET("/player_score", scores.Fetch)
	router.POST("/upload_player_score", scores.Save)
	router.POST("/player_score", scores.Save)
	router.GET("/sprite", sprites.Fetch)
	router.POST("/sprite", sprites.Upload)
	router.POST("/upload_sprite", sprites.Upload)
	router.GET("/audio", audio.Fetch)
	router.POST("/audio", audio.Upload)
	router.POST("/upload_audio", audio.Upload)
	return router
}

func doRequest(router *gin.Engine, method, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func multipartFile(t *testing.T, field, fileName string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("cannot create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("cannot write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

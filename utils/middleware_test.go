package utils

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNoCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NoCacheMiddleware)
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/cached", func(c *gin.Context) {
		// End-points can override the default
		c.Header("cache-control", "private, max-age=60")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := w.Header().Get("cache-control"); got != "no-cache" {
		t.Errorf("cache-control = %q, want no-cache", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cached", nil))
	if got := w.Header().Get("cache-control"); got != "private, max-age=60" {
		t.Errorf("cache-control = %q, want the handler's override", got)
	}
}

func TestErrorLogMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorLogMiddleware)
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	router.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadRequest, "broken input") })

	var logged bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&logged)
	defer log.SetOutput(orig)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Body.String() != "fine" {
		t.Errorf("body = %q, want fine", w.Body.String())
	}
	if logged.Len() != 0 {
		t.Errorf("2xx response was logged: %s", logged.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	if w.Body.String() != "broken input" {
		t.Errorf("body = %q, want broken input", w.Body.String())
	}
	out := logged.String()
	if !strings.Contains(out, "GET /bad") || !strings.Contains(out, "status 400") || !strings.Contains(out, "broken input") {
		t.Errorf("log output missing request details: %q", out)
	}
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupLoggerRouter(log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func TestLogger_LevelByStatusClass(t *testing.T) {
	tests := []struct {
		path      string
		wantLevel string
	}{
		{"/ok", "level=INFO"},
		{"/missing", "level=WARN"},
		{"/broken", "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			r := setupLoggerRouter(log)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			logged := buf.String()
			if !strings.Contains(logged, tt.wantLevel) {
				t.Errorf("expected %s in log output, got: %s", tt.wantLevel, logged)
			}
			if !strings.Contains(logged, "method=GET") {
				t.Errorf("expected method attribute in log output, got: %s", logged)
			}
			if !strings.Contains(logged, "path="+tt.path) {
				t.Errorf("expected path attribute in log output, got: %s", logged)
			}
		})
	}
}

func TestLogger_NilLoggerFallsBack(t *testing.T) {
	r := setupLoggerRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

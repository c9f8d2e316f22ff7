package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_PropagatesLoggerAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		id, ok := middleware.GetRequestIDFromContext(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "inside handler", first["msg"])
	assert.Equal(t, "req-123", first["request_id"])
	assert.Equal(t, "/ping", first["path"])
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestGetLoggerFromCtx_DefaultsWhenMissing(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRateLimit(t *testing.T) {
	_, err := middleware.NewRateLimiter("not-a-rate")
	assert.Error(t, err)

	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

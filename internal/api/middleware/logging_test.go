package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.LoggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Generates request id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"msg":"inside handler"`)
		assert.Contains(t, buf.String(), `"http_status":418`)
		assert.Contains(t, buf.String(), rr.Header().Get("X-Request-ID"))
	})

	t.Run("Keeps caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"correlation_id":"req-123"`)
	})
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.LoggerFromContext(t.Context()))
}

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tutorhub/internal/middleware"

	"github.com/stretchr/testify/assert"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestCORS(t *testing.T) {
	handler := middleware.CORS([]string{"http://localhost:8080"})(ok)

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/courses/1", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/courses/1", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/courses/1", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	w := httptest.NewRecorder()
	middleware.RequestLogger(logger)(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), `"path":"/health"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

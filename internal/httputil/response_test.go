package httputil_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("NotFound_EchoesMessage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tutors/42", nil)
		w := httptest.NewRecorder()

		httputil.RespondWithError(w, req, logger, apperror.NotFound("Tutor id not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, map[string]string{"error_message": "Tutor id not found"}, body)
	})

	t.Run("Database_HidesCause", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tutors", nil)
		w := httptest.NewRecorder()

		httputil.RespondWithError(w, req, logger, apperror.Database(errors.New("password authentication failed")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error_message":"Database error"}`, w.Body.String())
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	validate := validator.New()

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
		var p payload
		require.NoError(t, httputil.DecodeJSON(req, validate, &p))
		assert.Equal(t, "Ann", p.Name)
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var p payload
		err := httputil.DecodeJSON(req, validate, &p)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
		assert.Equal(t, "Please provide valid Json input", err.Error())
	})

	t.Run("TrailingData", func(t *testing.T) {
		for _, body := range []string{`{"name":"Ann"} junk`, `{"name":"Ann"}{"name":"Bob"}`} {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var p payload
			err := httputil.DecodeJSON(req, validate, &p)
			assert.True(t, errors.Is(err, apperror.ErrInvalidInput), body)
		}
	})

	t.Run("TrailingWhitespace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"Ann\"}\n  "))
		var p payload
		require.NoError(t, httputil.DecodeJSON(req, validate, &p))
	})

	t.Run("MissingRequired", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var p payload
		err := httputil.DecodeJSON(req, validate, &p)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	})
}

package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"tutorhub/internal/apperror"

	"github.com/go-playground/validator/v10"
)

const invalidJSONMessage = "Please provide valid Json input"

// ErrorResponse is the body of every JSON error response.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError maps err to its status code, logs it and writes the
// uniform error body.
func RespondWithError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := apperror.StatusCode(err)
	message := apperror.PublicMessage(err)
	ctx := r.Context()

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		logger.InfoContext(ctx, "not found error occurred", "error", message, "path", r.URL.Path)
	case errors.Is(err, apperror.ErrInvalidInput):
		logger.InfoContext(ctx, "invalid parameters received", "error", message, "path", r.URL.Path)
	default:
		logger.ErrorContext(ctx, "request failed", "error", apperror.Cause(err), "kind", message, "path", r.URL.Path)
	}

	RespondWithJSON(w, status, ErrorResponse{ErrorMessage: message})
}

// DecodeJSON decodes the request body into v and validates it. The body must
// hold exactly one JSON value. Any failure is reported as invalid input.
func DecodeJSON(r *http.Request, validate *validator.Validate, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apperror.InvalidInput(invalidJSONMessage)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.InvalidInput(invalidJSONMessage)
	}
	if err := validate.Struct(v); err != nil {
		return apperror.InvalidInput(invalidJSONMessage)
	}
	return nil
}

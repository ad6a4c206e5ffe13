package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tutorhub/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Database", apperror.Database(dbErr), http.StatusInternalServerError, "Database error"},
		{"Upstream", apperror.Upstream(dbErr), http.StatusInternalServerError, "Internal server error"},
		{"Template", apperror.Template(dbErr), http.StatusInternalServerError, "Template render error"},
		{"NotFound", apperror.NotFound("Tutor id not found"), http.StatusNotFound, "Tutor id not found"},
		{"InvalidInput", apperror.InvalidInput("Please provide valid Json input"), http.StatusBadRequest, "Please provide valid Json input"},
		{"Wrapped", fmt.Errorf("get tutor: %w", apperror.NotFound("Tutor id not found")), http.StatusNotFound, "Tutor id not found"},
		{"Unclassified", dbErr, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, apperror.StatusCode(tt.err))
			assert.Equal(t, tt.message, apperror.PublicMessage(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := apperror.Database(cause)

	assert.True(t, errors.Is(err, apperror.ErrDatabase))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, cause, apperror.Cause(err))

	notFound := apperror.NotFound("Course id not found")
	assert.True(t, errors.Is(notFound, apperror.ErrNotFound))
	assert.Nil(t, apperror.Cause(notFound))
}

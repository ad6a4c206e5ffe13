package apperror

import (
	"errors"
	"net/http"
)

// Kind sentinels. Match with errors.Is.
var (
	ErrDatabase     = errors.New("database error")
	ErrUpstream     = errors.New("upstream error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrTemplate     = errors.New("template error")
)

// Error carries a kind sentinel, the message safe to show to clients and
// the underlying cause, which is only ever logged.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Database(cause error) error {
	return &Error{Kind: ErrDatabase, Message: "Database error", Cause: cause}
}

func Upstream(cause error) error {
	return &Error{Kind: ErrUpstream, Message: "Internal server error", Cause: cause}
}

func Template(cause error) error {
	return &Error{Kind: ErrTemplate, Message: "Template render error", Cause: cause}
}

func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func InvalidInput(message string) error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}

// StatusCode maps an error to the HTTP status its kind stands for.
// Unclassified errors are treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that may be sent back to the client.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return "Internal server error"
}

// Cause returns the wrapped infrastructure error, if any.
func Cause(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Cause
	}
	return err
}

// Package apperrors defines the structured error types surfaced by the API
// and the sentinel errors used by the extraction pipeline.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoExtractableText is returned when a document yields no usable text at
// all: zero pages, or page-1 text that is empty after whitespace trimming.
// Callers persist an error-status record for this case instead of a
// best-effort one.
var ErrNoExtractableText = errors.New("no extractable text in document")

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	ExtractionError ErrorType = "EXTRACTION_FAILED"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError is a structured application error carrying the HTTP status the
// handler layer should respond with.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// New creates an AppError with the status code implied by its type.
func New(errType ErrorType, message, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: httpStatus(errType),
	}
}

// Wrap attaches AppError context to a raw error.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: httpStatus(errType),
		Raw:        err,
	}
}

func NotFound(entity, id string) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("id: %s", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

func ExtractionFailed(err error) *AppError {
	return &AppError{
		Type:       ExtractionError,
		Message:    "failed to extract estimate data",
		Detail:     err.Error(),
		HTTPStatus: http.StatusUnprocessableEntity,
		Raw:        err,
	}
}

func httpStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ExtractionError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

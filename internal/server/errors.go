package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/kyp-analysis/internal/schemas"
)

// ErrBadRequest indicates a request body that could not be read or decoded
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad request: %s: %v", e.Message, e.Cause)
	}
	return "bad request: " + e.Message
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRateLimited indicates the client exceeded its request budget
type ErrRateLimited struct{}

func (e *ErrRateLimited) Error() string {
	return "rate limit exceeded"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest  *ErrBadRequest
		validation  *ErrValidation
		schemaErr   *schemas.ValidationError
		documentErr *schemas.DocumentError
		rateLimited *ErrRateLimited
	)
	switch {
	case errors.As(err, &badRequest), errors.As(err, &validation),
		errors.As(err, &schemaErr), errors.As(err, &documentErr):
		return http.StatusBadRequest
	case errors.As(err, &rateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

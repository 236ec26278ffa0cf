package apierr

import (
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodeNotFound         = "not_found"
	CodeValidationFailed = "validation_failed"
	CodeGenerationFailed = "generation_failed"
	CodeUnauthorized     = "unauthorized"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func ValidationFailed(err error) *Error {
	return New(http.StatusBadRequest, CodeValidationFailed, err)
}

// GenerationFailed marks a generation backend call that was configured but did
// not produce a usable document. It is never raised for the offline fallback.
func GenerationFailed(err error) *Error {
	return New(http.StatusBadGateway, CodeGenerationFailed, err)
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

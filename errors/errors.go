// Package errors provides the typed errors returned by the law-checking
// tooling. The functional package itself never returns errors.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents tooling error categories.
type ErrorCode string

const (
	// ErrCodeLawViolation marks a law property that found a counterexample.
	ErrCodeLawViolation ErrorCode = "LAW_VIOLATION"
	// ErrCodeInvalidConfig marks a configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnknownSuite marks a request for a law suite that is not registered.
	ErrCodeUnknownSuite ErrorCode = "UNKNOWN_SUITE"
	// ErrCodeInternal marks any other tooling failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// exitCodes maps error codes to process exit statuses for the CLI.
var exitCodes = map[ErrorCode]int{
	ErrCodeLawViolation:  1,
	ErrCodeInvalidConfig: 2,
	ErrCodeUnknownSuite:  2,
	ErrCodeInternal:      3,
}

// AppError is the standard tooling error type.
type AppError struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	cause     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ExitCode returns the process exit status for this error.
func (e *AppError) ExitCode() int {
	if code, ok := exitCodes[e.Code]; ok {
		return code
	}
	return exitCodes[ErrCodeInternal]
}

// Is checks if the error matches a target error code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

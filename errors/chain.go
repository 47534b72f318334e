package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	// Keep the code of an AppError anywhere in the chain.
	if appErr, ok := AsType[*AppError](err); ok {
		return &AppError{
			Code:      appErr.Code,
			Message:   message,
			Details:   appErr.Details,
			Timestamp: appErr.Timestamp,
			cause:     err,
		}
	}
	return Internal(message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is checks if any error in the chain matches the target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in the chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsCode checks if the error has the specified error code.
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
func GetCode(err error) ErrorCode {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// ExitCode returns the process exit status for err: 0 for nil, the code's
// status for an AppError, and the internal status otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.ExitCode()
	}
	return exitCodes[ErrCodeInternal]
}

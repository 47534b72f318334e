package errors

import "time"

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// LawViolation creates an error for a failed law property.
func LawViolation(suite, property string) *AppError {
	return New(ErrCodeLawViolation, property+" does not hold").
		WithDetail("suite", suite).
		WithDetail("property", property)
}

// InvalidConfig creates a configuration validation error.
func InvalidConfig(key, message string) *AppError {
	return New(ErrCodeInvalidConfig, message).WithDetail("key", key)
}

// UnknownSuite creates an error for an unregistered law suite.
func UnknownSuite(name string) *AppError {
	return New(ErrCodeUnknownSuite, "unknown law suite "+name).WithDetail("suite", name)
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

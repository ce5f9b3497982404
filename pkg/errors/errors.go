// Package errors provides coded errors for settingsguard.
//
// The validation engine itself never returns errors: bad rule data fails
// closed. Codes here cover the edges around it, where rule files, settings
// files and configuration are read.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown           ErrorCode = "UNKNOWN"
	ErrInternal          ErrorCode = "INTERNAL"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule store errors
	ErrRulesLoad    ErrorCode = "RULES_LOAD"
	ErrRulesParse   ErrorCode = "RULES_PARSE"
	ErrRulesInvalid ErrorCode = "RULES_INVALID"

	// Settings snapshot errors
	ErrSettingsLoad  ErrorCode = "SETTINGS_LOAD"
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"
)

// GuardError represents a structured error with code and details
type GuardError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GuardError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GuardError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GuardError) Is(target error) bool {
	var targetErr *GuardError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GuardError with the given code and message
func New(code ErrorCode, message string) *GuardError {
	return &GuardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GuardError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GuardError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a GuardError
func Wrap(err error, code ErrorCode, message string) *GuardError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GuardError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *GuardError) WithDetail(key string, value interface{}) *GuardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GuardError) WithDetails(details map[string]interface{}) *GuardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GuardError
func GetErrorCode(err error) ErrorCode {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GuardError
func GetErrorDetails(err error) map[string]interface{} {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.Details
	}
	return nil
}

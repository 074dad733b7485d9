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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Tree errors
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrTraversal     ErrorCode = "TRAVERSAL"
	ErrIO            ErrorCode = "IO"

	// Install errors
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrHomeDirUnavailable ErrorCode = "HOME_DIR_UNAVAILABLE"
	ErrSymlinkUnsupported ErrorCode = "SYMLINK_UNSUPPORTED"

	// Configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigValid  ErrorCode = "CONFIG_INVALID"
	ErrMappingParse ErrorCode = "MAPPING_PARSE"
)

// Detail keys shared by filesystem errors
const (
	DetailPath = "path"
	DetailOp   = "op"
)

// ThemeError represents a structured error with code and details
type ThemeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ThemeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThemeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThemeError) Is(target error) bool {
	var targetErr *ThemeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ThemeError with the given code and message
func New(code ErrorCode, message string) *ThemeError {
	return &ThemeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ThemeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThemeError {
	return &ThemeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ThemeError
func Wrap(err error, code ErrorCode, message string) *ThemeError {
	if err == nil {
		return nil
	}
	return &ThemeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThemeError {
	if err == nil {
		return nil
	}
	return &ThemeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// PathError wraps a filesystem failure as an IO error tagged with the
// failing operation and path.
func PathError(err error, op, path string) *ThemeError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "%s %s", op, path).
		WithDetail(DetailOp, op).
		WithDetail(DetailPath, path)
}

// WithDetail adds a detail to the error
func (e *ThemeError) WithDetail(key string, value interface{}) *ThemeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ThemeError) WithDetails(details map[string]interface{}) *ThemeError {
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
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThemeError
func GetErrorCode(err error) ErrorCode {
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ThemeError
func GetErrorDetails(err error) map[string]interface{} {
	var themeErr *ThemeError
	if errors.As(err, &themeErr) {
		return themeErr.Details
	}
	return nil
}

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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Command errors
	ErrCommandInvalid   ErrorCode = "COMMAND_INVALID"
	ErrUnknownCommand   ErrorCode = "UNKNOWN_COMMAND"
	ErrMissingArgument  ErrorCode = "MISSING_ARGUMENT"
	ErrInvalidType      ErrorCode = "INVALID_TYPE"
	ErrUsage            ErrorCode = "USAGE"
	ErrCommandExecution ErrorCode = "COMMAND_EXECUTION"

	// I/O errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrRowDecode  ErrorCode = "ROW_DECODE"
)

// Exit codes returned by the command layer
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// TurbotermError represents a structured error with code and details
type TurbotermError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TurbotermError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TurbotermError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TurbotermError) Is(target error) bool {
	var targetErr *TurbotermError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TurbotermError with the given code and message
func New(code ErrorCode, message string) *TurbotermError {
	return &TurbotermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TurbotermError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TurbotermError {
	return &TurbotermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TurbotermError
func Wrap(err error, code ErrorCode, message string) *TurbotermError {
	if err == nil {
		return nil
	}
	return &TurbotermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TurbotermError {
	if err == nil {
		return nil
	}
	return &TurbotermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TurbotermError) WithDetail(key string, value interface{}) *TurbotermError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ttErr *TurbotermError
	if errors.As(err, &ttErr) {
		return ttErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TurbotermError
func GetErrorCode(err error) ErrorCode {
	var ttErr *TurbotermError
	if errors.As(err, &ttErr) {
		return ttErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TurbotermError
func GetErrorDetails(err error) map[string]interface{} {
	var ttErr *TurbotermError
	if errors.As(err, &ttErr) {
		return ttErr.Details
	}
	return nil
}

// ExitCode maps an error to a process exit status. Usage problems (bad
// arguments, unknown commands) exit with 2, every other failure with 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrUsage, ErrUnknownCommand, ErrMissingArgument, ErrInvalidType:
		return ExitUsage
	default:
		return ExitError
	}
}

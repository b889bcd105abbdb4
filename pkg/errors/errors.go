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

	// Modifier resolution errors
	ErrUnknownAlias               ErrorCode = "UNKNOWN_ALIAS"
	ErrInvalidSideQualifier       ErrorCode = "INVALID_SIDE_QUALIFIER"
	ErrUnrecognizedOptionalSyntax ErrorCode = "UNRECOGNIZED_OPTIONAL_SYNTAX"
	ErrConflictingModifier        ErrorCode = "CONFLICTING_MODIFIER"
	ErrInvalidExpression          ErrorCode = "INVALID_EXPRESSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rules file errors
	ErrRulesLoad    ErrorCode = "RULES_LOAD"
	ErrRulesInvalid ErrorCode = "RULES_INVALID"

	// Karabiner profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// KarabuildError represents a structured error with code and details
type KarabuildError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KarabuildError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KarabuildError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KarabuildError) Is(target error) bool {
	var targetErr *KarabuildError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new KarabuildError with the given code and message
func New(code ErrorCode, message string) *KarabuildError {
	return &KarabuildError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KarabuildError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KarabuildError {
	return &KarabuildError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KarabuildError
func Wrap(err error, code ErrorCode, message string) *KarabuildError {
	if err == nil {
		return nil
	}
	return &KarabuildError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KarabuildError {
	if err == nil {
		return nil
	}
	return &KarabuildError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *KarabuildError) WithDetail(key string, value interface{}) *KarabuildError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *KarabuildError) WithDetails(details map[string]interface{}) *KarabuildError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code.
// Wrapped chains are searched, so a RULES_INVALID error that wraps an
// UNKNOWN_ALIAS error matches both codes.
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &KarabuildError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KarabuildError
func GetErrorCode(err error) ErrorCode {
	var kbErr *KarabuildError
	if errors.As(err, &kbErr) {
		return kbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a KarabuildError
func GetErrorDetails(err error) map[string]interface{} {
	var kbErr *KarabuildError
	if errors.As(err, &kbErr) {
		return kbErr.Details
	}
	return nil
}

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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Dispatch errors
	ErrUnknownHandler ErrorCode = "UNKNOWN_HANDLER"

	// Scene errors
	ErrObjectNotFound ErrorCode = "OBJECT_NOT_FOUND"
	ErrSubscribe      ErrorCode = "SUBSCRIBE_FAILED"

	// Storage errors
	ErrMalformedRecord     ErrorCode = "MALFORMED_RECORD"
	ErrDescriptorNotStored ErrorCode = "DESCRIPTOR_NOT_STORED"
	ErrStorageAccess       ErrorCode = "STORAGE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Scene file errors
	ErrSceneFileRead  ErrorCode = "SCENE_FILE_READ"
	ErrSceneFileWrite ErrorCode = "SCENE_FILE_WRITE"
)

// AttrEventsError represents a structured error with code and details
type AttrEventsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AttrEventsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AttrEventsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AttrEventsError) Is(target error) bool {
	var targetErr *AttrEventsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AttrEventsError with the given code and message
func New(code ErrorCode, message string) *AttrEventsError {
	return &AttrEventsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AttrEventsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AttrEventsError {
	return &AttrEventsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AttrEventsError
func Wrap(err error, code ErrorCode, message string) *AttrEventsError {
	if err == nil {
		return nil
	}
	return &AttrEventsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AttrEventsError {
	if err == nil {
		return nil
	}
	return &AttrEventsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AttrEventsError) WithDetail(key string, value interface{}) *AttrEventsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var attrErr *AttrEventsError
	if errors.As(err, &attrErr) {
		return attrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AttrEventsError
func GetErrorCode(err error) ErrorCode {
	var attrErr *AttrEventsError
	if errors.As(err, &attrErr) {
		return attrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AttrEventsError
func GetErrorDetails(err error) map[string]interface{} {
	var attrErr *AttrEventsError
	if errors.As(err, &attrErr) {
		return attrErr.Details
	}
	return nil
}

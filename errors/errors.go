package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a failure surfaced to the caller.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeDBError    ErrorCode = "DB_ERROR"
)

// AppError is the error type every service returns.
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  []string
	Err     error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError. The helpers below cover the usual codes.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(message string, fields ...string) *AppError {
	appErr := NewAppError(ErrCodeValidation, message, nil)
	appErr.Fields = fields
	return appErr
}

func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

func NotFound(entity string) *AppError {
	return NewAppError(ErrCodeNotFound, entity+" not found", nil)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// GetAppError returns the AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

func IsValidation(err error) bool { return HasCode(err, ErrCodeValidation) }
func IsConflict(err error) bool   { return HasCode(err, ErrCodeConflict) }
func IsNotFound(err error) bool   { return HasCode(err, ErrCodeNotFound) }

var (
	ErrRoomNotAvailable = Conflict("room not available, ensure the room is available")
	ErrRoomHasBookings  = Conflict("room has an active booking")
)

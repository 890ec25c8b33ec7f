package errors

import "fmt"

// ErrorCode identifies an application error category
type ErrorCode string

const (
	// Generic codes
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrForbidden          ErrorCode = "FORBIDDEN"

	// Auth codes
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Seating validation codes
	ErrCapacityExceeded     ErrorCode = "CAPACITY_EXCEEDED"
	ErrCapacityTooSmall     ErrorCode = "CAPACITY_TOO_SMALL"
	ErrInvalidCapacityRange ErrorCode = "INVALID_CAPACITY_RANGE"
	ErrSyncInProgress       ErrorCode = "SYNC_IN_PROGRESS"
)

// AppError is the application-level error carried between service and controller layers
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// NewAppError creates a new application error wrapping an optional cause
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

package errors

import (
	"fmt"
	"net/http"

	"proximity/internal/errors"

	"github.com/google/uuid"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so detailed copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Zone-related errors
	ErrZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"ZONE_NOT_FOUND",
		"proximity zone not found",
		"",
	)

	ErrZoneNotEligible = NewBaseError(
		http.StatusUnprocessableEntity,
		"ZONE_NOT_ELIGIBLE",
		"zone cannot start a session right now",
		"",
	)

	// Vendor config-related errors
	ErrConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIG_NOT_FOUND",
		"vendor proximity config not found",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"recording session not found",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"operation not allowed in the current session state",
		"",
	)

	ErrMonitoringDisabled = NewBaseError(
		http.StatusUnprocessableEntity,
		"MONITORING_DISABLED",
		"proximity monitoring is disabled for this vendor",
		"",
	)

	ErrQuotaDenied = NewBaseError(
		http.StatusPaymentRequired,
		"QUOTA_DENIED",
		"recording quota exhausted",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Monitor-side errors. These never reach a user as a hard failure.
	ErrPositionSource = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_SOURCE_ERROR",
		"position source unavailable",
		"",
	)

	ErrDelivery = NewBaseError(
		http.StatusServiceUnavailable,
		"DELIVERY_ERROR",
		"delivery failed and was queued",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// Conflict error codes
const (
	CodeSessionAlreadyActive = "SESSION_ALREADY_ACTIVE"
	CodeZoneTooClose         = "ZONE_TOO_CLOSE"
	CodeZoneInUse            = "ZONE_IN_USE"
	CodeConfigExists         = "CONFIG_ALREADY_EXISTS"
)

// ConflictError reports a clash with an existing entity and always names it.
type ConflictError struct {
	code     string
	message  string
	entityID uuid.UUID
}

// NewConflictError creates a conflict error referencing the conflicting entity
func NewConflictError(code, message string, entityID uuid.UUID) *ConflictError {
	return &ConflictError{code: code, message: message, entityID: entityID}
}

// NewSessionAlreadyActiveError reports the vendor's open session
func NewSessionAlreadyActiveError(sessionID uuid.UUID) *ConflictError {
	return NewConflictError(CodeSessionAlreadyActive, "vendor already has an open recording session", sessionID)
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (conflicting id %s)", e.message, e.entityID)
}

// HTTPCode returns the HTTP status code
func (e *ConflictError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *ConflictError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *ConflictError) Message() string {
	return e.message
}

// Details returns the conflicting entity id
func (e *ConflictError) Details() string {
	return e.entityID.String()
}

// EntityID returns the id of the entity that caused the conflict
func (e *ConflictError) EntityID() uuid.UUID {
	return e.entityID
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// AsConflict extracts a ConflictError from err's chain
func AsConflict(err error) (*ConflictError, bool) {
	return errors.AsType[*ConflictError](err)
}

// HasCode reports whether err's chain contains an AppError with the given code
func HasCode(err error, code string) bool {
	appErr, ok := errors.AsType[AppError](err)

	return ok && appErr.ErrorCode() == code
}

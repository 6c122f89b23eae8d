// Package errors provides the application error taxonomy. Handlers map
// ErrorType to HTTP status codes, so usecases never import net/http.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeDuplicateSerial   ErrorType = "duplicate_serial"
	ErrorTypePortConflict      ErrorType = "port_conflict"
	ErrorTypeAssetNotAvailable ErrorType = "asset_not_available"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeNotesRequired     ErrorType = "notes_required"
	ErrorTypeTaskTerminal      ErrorType = "task_terminal"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeForbidden         ErrorType = "forbidden"
	ErrorTypeInternal          ErrorType = "internal_error"
)

type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
	Details any       `json:"details,omitempty"`
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

func NewDuplicateSerialError(serial string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicateSerial,
		Message: fmt.Sprintf("asset with serial number %s already exists", serial),
	}
}

func NewPortConflictError(splitterID uint, port int) *AppError {
	return &AppError{
		Type:    ErrorTypePortConflict,
		Message: fmt.Sprintf("port %d on splitter %d is already occupied", port, splitterID),
	}
}

func NewAssetNotAvailableError(assetID uint) *AppError {
	return &AppError{
		Type:    ErrorTypeAssetNotAvailable,
		Message: fmt.Sprintf("asset %d is not available for assignment", assetID),
	}
}

func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

func NewNotesRequiredError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotesRequired, Message: message}
}

func NewTaskTerminalError(status string) *AppError {
	return &AppError{
		Type:    ErrorTypeTaskTerminal,
		Message: fmt.Sprintf("task is already in terminal status %s", status),
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Type: ErrorTypeForbidden, Message: message}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, cause: cause}
}

// GetAppError extracts an *AppError from an error chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Type == errorType
	}
	return false
}

func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsPortConflict(err error) bool {
	return IsType(err, ErrorTypePortConflict)
}

func IsInvalidTransition(err error) bool {
	return IsType(err, ErrorTypeInvalidTransition)
}

// IsDuplicateKeyError reports whether a database error is a unique
// constraint violation. Covers mysql 1062 and sqlite messages.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

package utils

import (
	"errors"
)

// ErrorKind classifies every failure the services can surface so the HTTP
// layer maps them to a consistent status code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindPermission
	KindNotFound
	KindAuthentication
	KindIntegrity
)

// AppError carries a user-facing message plus an optional detail error
// (typically an ozzo validation.Errors with field-level messages).
type AppError struct {
	Kind    ErrorKind
	Message string
	Details error
}

func (e *AppError) Error() string {
	if e.Details != nil {
		return e.Message + ": " + e.Details.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Details
}

// ValidationError reports malformed or conflicting input.
func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// ValidationDetails wraps a field-level validation result.
func ValidationDetails(message string, details error) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

// PermissionError reports an authenticated caller attempting a mutation it
// does not own.
func PermissionError(message string) *AppError {
	return &AppError{Kind: KindPermission, Message: message}
}

// NotFoundError covers both truly absent rows and rows hidden by ownership
// scoping; callers must not be able to tell the two apart.
func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// AuthenticationError reports a missing or invalid credential/token.
func AuthenticationError(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message}
}

// IntegrityError reports a storage constraint violation that was not caught
// by a precheck. The HTTP layer renders it like a validation failure rather
// than a raw 500.
func IntegrityError(message string, cause error) *AppError {
	return &AppError{Kind: KindIntegrity, Message: message, Details: cause}
}

// AsAppError unwraps err into an *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}

package internal

import (
	"net/http"
	"sort"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeAccountInactive    ErrorCode = "ACCOUNT_INACTIVE"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeTokenRevoked       ErrorCode = "TOKEN_REVOKED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInvalidID          ErrorCode = "INVALID_ID"
	ErrCodeDeleteFailed       ErrorCode = "DELETE_FAILED"
)

// EnvelopeKind selects the wire shape an error is rendered with. The API
// historically used three shapes: per-field errors under "validations",
// auth-flow errors under "detail", and resource endpoints under "message".
type EnvelopeKind int

const (
	EnvelopeValidations EnvelopeKind = iota
	EnvelopeDetail
	EnvelopeMessage
)

type AppError struct {
	Type       ErrorType
	Code       ErrorCode
	Message    string
	Fields     map[string]string
	Kind       EnvelopeKind
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msg := range e.Fields {
			parts = append(parts, field+": "+msg)
		}
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField merges a field-scoped message into the error, returning the
// receiver for chaining.
func (e *AppError) WithField(field, message string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// Envelope returns the HTTP status and the wire body for this error.
func (e *AppError) Envelope() (int, map[string]any) {
	switch e.Kind {
	case EnvelopeValidations:
		return e.StatusCode, map[string]any{"validations": e.Fields}
	case EnvelopeMessage:
		return e.StatusCode, map[string]any{"message": e.Message}
	default:
		return e.StatusCode, map[string]any{"detail": e.Message}
	}
}

// NewValidationError builds a field-scoped validation error rendered as
// {"validations": {field: message}}.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		Kind:       EnvelopeValidations,
		StatusCode: http.StatusBadRequest,
		Fields:     map[string]string{field: message},
	}
}

func NewDetailError(status int, message string, code ErrorCode) *AppError {
	errType := ErrorTypeValidation
	if status == http.StatusUnauthorized {
		errType = ErrorTypeUnauthorized
	}
	return &AppError{
		Type:       errType,
		Code:       code,
		Message:    message,
		Kind:       EnvelopeDetail,
		StatusCode: status,
	}
}

func NewMessageError(status int, message string, code ErrorCode) *AppError {
	errType := ErrorTypeValidation
	switch {
	case status == http.StatusNotFound:
		errType = ErrorTypeNotFound
	case status >= 500:
		errType = ErrorTypeInternal
	}
	return &AppError{
		Type:       errType,
		Code:       code,
		Message:    message,
		Kind:       EnvelopeMessage,
		StatusCode: status,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		Kind:       EnvelopeDetail,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewDetailError(http.StatusUnauthorized, "Invalid username/password", ErrCodeInvalidCredentials)
	ErrAccountInactive    = NewDetailError(http.StatusUnauthorized, "Your account is not active.", ErrCodeAccountInactive)
	ErrInvalidAccessToken = NewDetailError(http.StatusUnauthorized, "Given token not valid for any token type", ErrCodeInvalidToken)
	ErrInvalidRefresh     = NewDetailError(http.StatusUnauthorized, "Token is invalid or expired", ErrCodeInvalidToken)
	ErrLogoutInvalidToken = NewDetailError(http.StatusBadRequest, "Invalid refresh token", ErrCodeInvalidToken)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

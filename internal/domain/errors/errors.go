package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain errors
var (
	ErrNotFound                 = errors.New("resource not found")
	ErrAlreadyExists            = errors.New("resource already exists")
	ErrInvalidInput             = errors.New("invalid input")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrForbidden                = errors.New("forbidden")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrTokenExpired             = errors.New("token expired")
	ErrUnknownCategory          = errors.New("unknown document category")
	ErrCaseNotFound             = errors.New("disbursement case not found")
	ErrInvalidAmortizationInput = errors.New("invalid amortization input")
	ErrStorageWriteFailed       = errors.New("document storage write failed")
	ErrUnknownReadinessFlag     = errors.New("unknown readiness flag")
	ErrUnknownScheduleField     = errors.New("unknown schedule field")
	ErrUnknownMonetaryField     = errors.New("unknown monetary field")
	ErrInvalidAppointmentSlot   = errors.New("invalid appointment slot")
)

// IncompleteDocumentSetError is returned when a submission is attempted
// before the category checklist is satisfied. It carries the missing
// document types so the caller can render them.
type IncompleteDocumentSetError struct {
	Missing []string
}

func (e *IncompleteDocumentSetError) Error() string {
	return fmt.Sprintf("incomplete document set, missing: %s", strings.Join(e.Missing, ", "))
}

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "BAD_REQUEST", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "CONFLICT", message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "INTERNAL", "internal server error", err)
}

// FromDomain maps the local error taxonomy onto HTTP-aware AppErrors.
// Everything in this subsystem is a recoverable operator-facing
// condition, so unknown errors fall through to InternalError.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var incomplete *IncompleteDocumentSetError
	if errors.As(err, &incomplete) {
		return NewAppError(http.StatusUnprocessableEntity, "INCOMPLETE_DOCUMENT_SET", incomplete.Error(), incomplete)
	}

	switch {
	case errors.Is(err, ErrCaseNotFound), errors.Is(err, ErrNotFound):
		return NotFound(err.Error())
	case errors.Is(err, ErrUnknownCategory),
		errors.Is(err, ErrInvalidAmortizationInput),
		errors.Is(err, ErrUnknownReadinessFlag),
		errors.Is(err, ErrUnknownScheduleField),
		errors.Is(err, ErrUnknownMonetaryField),
		errors.Is(err, ErrInvalidAppointmentSlot),
		errors.Is(err, ErrInvalidInput):
		return BadRequest(err.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenExpired):
		return Unauthorized(err.Error())
	case errors.Is(err, ErrForbidden):
		return Forbidden(err.Error())
	case errors.Is(err, ErrAlreadyExists):
		return Conflict(err.Error())
	}
	return InternalError(err)
}

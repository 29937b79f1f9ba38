package errors

import (
	"errors"
	"fmt"

	"tasklist/domain/shared"
)

// ErrorCode application error code
type ErrorCode string

const (
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
)

// FieldError one rejected request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError application error
type AppError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

// Validation builds a validation error listing the rejected fields.
func Validation(message string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}

// FromDomainError maps domain sentinels to application error codes.
// Errors it does not recognise become CodeInternal with the original kept in Err.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var domainErr *shared.DomainError
	hasDomain := errors.As(err, &domainErr)

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		out := Wrap(err, CodeValidation, err.Error())
		if hasDomain && domainErr.Field != "" {
			out.Details = []FieldError{{Field: domainErr.Field, Reason: domainErr.Message}}
		}
		return out
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}

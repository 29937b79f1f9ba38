/*
Package shared holds error types common to all domain packages.

Sentinel errors are matched with errors.Is. DomainError captures the call stack
when it is created and only formats it when Stack() is called, so the API layer
can log where an error originated without paying for formatting on every error.
Domain errors never carry transport concepts such as HTTP status codes.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotFound resource not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput input failed validation
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError structured error carrying business context and the creation-point stack.
type DomainError struct {
	// Err underlying sentinel, used by errors.Is
	Err error

	// Entity name of the entity involved ("task")
	Entity string

	// Message human readable description
	Message string

	// Field optional field name for validation errors
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured frames on demand.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack records the current call stack.
// skip is usually 3: Callers, CaptureStack, NewXxxError.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders frames as "file:line function", dropping runtime frames. At most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) >= 10 {
			break
		}
	}
	return result
}

func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// Stacker is implemented by errors that can report where they were created.
type Stacker interface {
	Stack() []string
}

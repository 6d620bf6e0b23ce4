// Package apperror defines the failure categories that cross the service
// boundary and are translated into HTTP responses.
package apperror

import (
	"errors"
	"fmt"
)

// Kind tags an Error with its category.
type Kind int

const (
	// KindValidation means one or more wire-record fields violate a constraint.
	KindValidation Kind = iota + 1
	// KindConflict covers duplicate emails and other rejected application states,
	// including an empty listing.
	KindConflict
	// KindNotFound means the addressed record does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the service and validation layers.
type Error struct {
	Kind    Kind
	Message string

	// Resource, Field and Value describe a KindNotFound lookup.
	Resource string
	Field    string
	Value    any

	// Fields holds field -> violation message for KindValidation.
	Fields map[string]string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap records cause as the underlying error and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause
	return e
}

// Validation returns a KindValidation error for the given field violations.
func Validation(fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// Conflict returns a KindConflict error carrying msg.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Conflictf formats a KindConflict message.
func Conflictf(format string, args ...any) *Error {
	return Conflict(fmt.Sprintf(format, args...))
}

// NotFound returns a KindNotFound error for resource looked up by field = value.
// The message reads "{resource} not found with {field}: {value}".
func NotFound(resource, field string, value any) *Error {
	return &Error{
		Kind:     KindNotFound,
		Message:  fmt.Sprintf("%s not found with %s: %v", resource, field, value),
		Resource: resource,
		Field:    field,
		Value:    value,
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

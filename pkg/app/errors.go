package app

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is matched by MalformedInputError via errors.Is.
	ErrMalformedInput = errors.New("app: malformed definition")
	// ErrUnknownEnumValue is matched by UnknownEnumValueError via errors.Is.
	ErrUnknownEnumValue = errors.New("app: unknown enum value")
)

// MalformedInputError reports a required field that is missing or has the
// wrong shape.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("app: malformed definition: %s: %s", e.Field, e.Reason)
}

// Is allows errors.Is(err, ErrMalformedInput).
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// UnknownEnumValueError reports a value outside its enumeration domain.
type UnknownEnumValueError struct {
	Field string
	Kind  string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("app: %s: %q is not a %s", e.Field, e.Value, e.Kind)
}

// Is allows errors.Is(err, ErrUnknownEnumValue).
func (e *UnknownEnumValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

func malformed(field, reason string) error {
	return &MalformedInputError{Field: field, Reason: reason}
}

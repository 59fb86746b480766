// Package enum provides closed, bidirectional enumeration tables. A table maps
// each declared symbolic name to its value and back; construction rejects any
// declaration where two names share a value, so reverse lookups are always
// unambiguous.
package enum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is matched by UnknownValueError via errors.Is.
var ErrUnknownValue = errors.New("enum: unknown value")

// Member declares one symbolic name and its value.
type Member[T ~string] struct {
	Name  string
	Value T
}

// UnknownValueError reports a value that is not declared by a table.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("enum: %s has no member with value %q", e.Kind, e.Value)
}

// Is allows errors.Is(err, ErrUnknownValue).
func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownValue
}

// Table is an immutable value<->name mapping. It is safe for concurrent use.
type Table[T ~string] struct {
	kind    string
	members []Member[T]
	byValue map[T]string
	byName  map[string]T
}

// New builds a table for kind from the declared members. Members keep their
// declaration order.
func New[T ~string](kind string, members ...Member[T]) (*Table[T], error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil, errors.New("enum: kind is required")
	}

	table := &Table[T]{
		kind:    kind,
		members: make([]Member[T], 0, len(members)),
		byValue: make(map[T]string, len(members)),
		byName:  make(map[string]T, len(members)),
	}
	for _, member := range members {
		if member.Name == "" {
			return nil, fmt.Errorf("enum: %s declares a member with an empty name", kind)
		}
		if member.Value == "" {
			return nil, fmt.Errorf("enum: %s.%s has an empty value", kind, member.Name)
		}
		if _, exists := table.byName[member.Name]; exists {
			return nil, fmt.Errorf("enum: %s declares %s twice", kind, member.Name)
		}
		if other, exists := table.byValue[member.Value]; exists {
			return nil, fmt.Errorf("enum: %s.%s and %s.%s share value %q", kind, other, kind, member.Name, member.Value)
		}
		table.byName[member.Name] = member.Value
		table.byValue[member.Value] = member.Name
		table.members = append(table.members, member)
	}
	return table, nil
}

// MustNew is New for package-level declarations; it panics on an invalid
// declaration so the process fails at start.
func MustNew[T ~string](kind string, members ...Member[T]) *Table[T] {
	table, err := New(kind, members...)
	if err != nil {
		panic(err)
	}
	return table
}

// Kind returns the enumeration name, e.g. "Network".
func (t *Table[T]) Kind() string {
	return t.kind
}

// Name returns the symbolic name declared for value.
func (t *Table[T]) Name(value T) (string, error) {
	name, ok := t.byValue[value]
	if !ok {
		return "", &UnknownValueError{Kind: t.kind, Value: string(value)}
	}
	return name, nil
}

// Value returns the value declared under name.
func (t *Table[T]) Value(name string) (T, bool) {
	value, ok := t.byName[name]
	return value, ok
}

// Contains reports whether value is declared.
func (t *Table[T]) Contains(value T) bool {
	_, ok := t.byValue[value]
	return ok
}

// Members returns a copy of the declared members in declaration order.
func (t *Table[T]) Members() []Member[T] {
	out := make([]Member[T], len(t.members))
	copy(out, t.members)
	return out
}

// Values returns the declared values in declaration order.
func (t *Table[T]) Values() []T {
	out := make([]T, 0, len(t.members))
	for _, member := range t.members {
		out = append(out, member.Value)
	}
	return out
}

// Len returns the number of declared members.
func (t *Table[T]) Len() int {
	return len(t.members)
}

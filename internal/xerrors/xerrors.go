// Package xerrors defines the error taxonomy shared by every layer of the
// package/footprint editor core.
package xerrors

import (
	"errors"
	"fmt"
)

// InvalidValue reports that a constrained scalar constructor rejected its
// input.
type InvalidValue struct {
	Field  string
	Actual any
}

func (e *InvalidValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Actual)
}

// NewInvalidValue builds an InvalidValue error.
func NewInvalidValue(field string, actual any) error {
	return &InvalidValue{Field: field, Actual: actual}
}

// KeyNotFound reports a failed list lookup by UUID or name.
type KeyNotFound struct {
	Type string
	Key  string
}

func (e *KeyNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Type, e.Key)
}

// NewKeyNotFound builds a KeyNotFound error.
func NewKeyNotFound(typ, key string) error {
	return &KeyNotFound{Type: typ, Key: key}
}

// OutOfRange reports a list index outside its valid bounds.
type OutOfRange struct {
	Index int
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d", e.Index)
}

// NewOutOfRange builds an OutOfRange error.
func NewOutOfRange(index int) error {
	return &OutOfRange{Index: index}
}

// LogicError reports an API used out of its required order.
type LogicError struct {
	Where string
}

func (e *LogicError) Error() string {
	return "logic error: " + e.Where
}

// NewLogicError builds a LogicError.
func NewLogicError(where string) error {
	return &LogicError{Where: where}
}

// ErrActiveTransaction is returned by ExecCmd, BeginCmdGroup and Redo
// while an undo command group is active (Undo is a no-op then).
var ErrActiveTransaction = NewLogicError("an undo command group is currently active")

// UserError reports a user-initiated edit that was refused. The state
// machine surfaces these as a status-bar message or modal dialog and
// remains interactive.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError builds a UserError.
func NewUserError(message string) error {
	return &UserError{Message: message}
}

// IsUserError reports whether err is (or wraps) a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

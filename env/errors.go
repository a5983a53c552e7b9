// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPresent is the cause recorded when a variable is not set.
	ErrNotPresent = errors.New("environment variable not found")

	// ErrInvalidData is the I/O category attached by ToIOError.
	ErrInvalidData = errors.New("invalid data")
)

// NotUnicodeError is the cause recorded when a variable is set but its
// value is not valid UTF-8.
type NotUnicodeError struct {
	// Value holds the raw bytes of the variable.
	Value []byte
}

// Error implements the error interface.
func (e *NotUnicodeError) Error() string {
	return fmt.Sprintf("environment variable was not valid unicode: %q", e.Value)
}

// VarError records a failed lookup together with the variable name.
type VarError struct {
	name string
	err  error
}

// NewVarError creates a VarError for the named variable.
func NewVarError(name string, err error) *VarError {
	return &VarError{name: name, err: err}
}

// Error implements the error interface.
func (e *VarError) Error() string {
	return fmt.Sprintf("%s: %s", e.name, e.err)
}

// Name returns the variable name exactly as it was requested.
func (e *VarError) Name() string {
	return e.name
}

// Unwrap returns the underlying cause for errors.Is() and errors.As() compatibility.
func (e *VarError) Unwrap() error {
	return e.err
}

// invalidDataError tags a VarError with ErrInvalidData without changing
// its message.
type invalidDataError struct {
	err *VarError
}

func (e *invalidDataError) Error() string {
	return e.err.Error()
}

func (e *invalidDataError) Unwrap() []error {
	return []error{ErrInvalidData, e.err}
}

// ToIOError converts a VarError into a generic I/O error of the
// "invalid data" category. The result matches ErrInvalidData with errors.Is
// and still yields the original *VarError with errors.As.
// If err is nil, ToIOError returns nil.
func ToIOError(err *VarError) error {
	if err == nil {
		return nil
	}
	return &invalidDataError{err: err}
}

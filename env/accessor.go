// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"
)

// Text is the set of types accepted as variable names and defaults.
type Text interface {
	~string | ~[]byte
}

// Accessor reads variables through a Reader and applies the lookup policy.
// An Accessor is immutable and safe for concurrent use.
type Accessor struct {
	reader Reader
	logger *slog.Logger
}

// Option configures an Accessor created by NewAccessor.
type Option func(*Accessor)

// WithReader sets the source of variables.
// The default is [OSReader].
func WithReader(r Reader) Option {
	return func(a *Accessor) {
		a.reader = r
	}
}

// WithLogger sets a logger that receives a DEBUG record whenever
// VarDefault falls back to its default. No records are written by default.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		a.logger = l
	}
}

// NewAccessor creates an Accessor reading from the process environment
// unless configured otherwise.
func NewAccessor(opts ...Option) *Accessor {
	a := &Accessor{reader: &OSReader{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Var returns the value of the named variable.
//
// The returned error is a *VarError whose cause is ErrNotPresent when the
// variable is unset, or a *NotUnicodeError when its value is not valid UTF-8.
// An empty value is returned as is.
func (a *Accessor) Var(name string) (string, error) {
	value, ok := a.reader.LookupEnv(name)
	if !ok {
		return "", NewVarError(name, ErrNotPresent)
	}
	if !utf8.ValidString(value) {
		return "", NewVarError(name, &NotUnicodeError{Value: []byte(value)})
	}
	return value, nil
}

// VarDefault returns the value of the named variable, or def when the
// variable is unset or empty. Any other failure is returned unchanged.
func (a *Accessor) VarDefault(name, def string) (string, error) {
	value, err := a.Var(name)
	switch {
	case errors.Is(err, ErrNotPresent):
		a.debugDefault(name, "unset")
		return def, nil
	case err != nil:
		return "", err
	case value == "":
		a.debugDefault(name, "empty")
		return def, nil
	}
	return value, nil
}

// MustVar is like Var but panics with the *VarError if the lookup fails.
func (a *Accessor) MustVar(name string) string {
	value, err := a.Var(name)
	if err != nil {
		panic(err)
	}
	return value
}

func (a *Accessor) debugDefault(name, reason string) {
	if a.logger == nil {
		return
	}
	a.logger.LogAttrs(context.Background(), slog.LevelDebug,
		"environment variable not usable, using default",
		slog.String("name", name),
		slog.String("reason", reason),
	)
}

var defaultAccessor = NewAccessor()

// Var reads the named variable from the process environment.
// See [Accessor.Var].
func Var[N Text](name N) (string, error) {
	return defaultAccessor.Var(string(name))
}

// VarDefault reads the named variable from the process environment,
// falling back to def when it is unset or empty.
// See [Accessor.VarDefault].
func VarDefault[N, D Text](name N, def D) (string, error) {
	return defaultAccessor.VarDefault(string(name), string(def))
}

// MustVar reads the named variable from the process environment and
// panics if it cannot be read.
func MustVar[N Text](name N) string {
	return defaultAccessor.MustVar(string(name))
}

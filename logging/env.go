// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stacklok/toolhive-envvars/env"
)

// Environment variables read by [OptionsFromEnv].
const (
	FormatEnvVar = "LOG_FORMAT"
	LevelEnvVar  = "LOG_LEVEL"
)

// ErrInvalidFormat is returned when LOG_FORMAT names an unknown format.
var ErrInvalidFormat = errors.New("unknown log format")

// OptionsFromEnv resolves the format and level from LOG_FORMAT and
// LOG_LEVEL. Unset or empty variables leave the defaults in place.
//
// LOG_FORMAT accepts "json" or "text". LOG_LEVEL accepts any level
// understood by [log/slog.Level.UnmarshalText], such as "debug" or "WARN+2".
func OptionsFromEnv(r env.Reader) ([]Option, error) {
	a := env.NewAccessor(env.WithReader(r))

	format, err := a.VarDefault(FormatEnvVar, "json")
	if err != nil {
		return nil, err
	}
	var f Format
	switch strings.ToLower(format) {
	case "json":
		f = FormatJSON
	case "text":
		f = FormatText
	default:
		return nil, fmt.Errorf("%s: %w: %q", FormatEnvVar, ErrInvalidFormat, format)
	}

	level, err := a.VarDefault(LevelEnvVar, slog.LevelInfo.String())
	if err != nil {
		return nil, err
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%s: %w", LevelEnvVar, err)
	}

	return []Option{WithFormat(f), WithLevel(l)}, nil
}

// NewFromEnv creates a logger configured by [OptionsFromEnv] from the
// process environment. Options in opts are applied afterwards and win.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	envOpts, err := OptionsFromEnv(&env.OSReader{})
	if err != nil {
		return nil, err
	}
	return New(append(envOpts, opts...)...), nil
}

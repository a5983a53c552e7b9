// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a zap-backed global logger whose output mode is
// selected from the environment.
package logger

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-envvars/env"
)

// UnstructuredLogsEnvVar selects plain console output when true.
// Unset, empty, unparsable or malformed values also select console output.
const UnstructuredLogsEnvVar = "UNSTRUCTURED_LOGS"

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Fatalw logs a message using the singleton logger and exits the program.
func Fatalw(msg string, keysAndValues ...any) {
	zap.S().Fatalw(msg, keysAndValues...)
}

// VarErrorFields returns the structured fields describing a failed
// environment lookup: the variable name and the error itself.
// Errors without an *env.VarError in their chain yield only the error field.
func VarErrorFields(err error) []any {
	var varErr *env.VarError
	if errors.As(err, &varErr) {
		return []any{"variable", varErr.Name(), "error", err}
	}
	return []any{"error", err}
}

// NewLogr returns a logr.Logger which uses zap logger
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider is an interface for checking if debug mode is enabled.
type DebugProvider interface {
	IsDebug() bool
}

type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize configures the global logger from the process environment.
// If UNSTRUCTURED_LOGS is false, it writes JSON to stdout; otherwise plain
// console lines with only time and level go to stderr.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithDebug is like Initialize with a custom debug provider.
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSReader{}, debugProvider)
}

// InitializeWithOptions configures the global logger with a custom environment reader and debug provider.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	var config zap.Config
	if unstructuredLogsWithEnv(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zap.ReplaceGlobals(zap.Must(config.Build()))
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	value, err := env.NewAccessor(env.WithReader(envReader)).VarDefault(UnstructuredLogsEnvVar, "true")
	if err != nil {
		// not valid unicode, so not a boolean either
		return true
	}
	unstructuredLogs, err := strconv.ParseBool(value)
	if err != nil {
		return true
	}
	return unstructuredLogs
}

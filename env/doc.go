// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env reads environment variables and reports failures as typed
errors that name the offending variable.

# Basic Usage

Read a required variable:

	home, err := env.Var("HOME")
	if err != nil {
		return err // e.g. "HOME: environment variable not found"
	}

Read a variable with a fallback. Unset and empty values both yield the
default; a value that is not valid UTF-8 is still an error:

	region, err := env.VarDefault("AWS_REGION", "us-east-1")

# Errors

Every failure is a [*VarError]. Its cause is either [ErrNotPresent] or a
[*NotUnicodeError] holding the raw bytes:

	var nu *env.NotUnicodeError
	switch {
	case errors.Is(err, env.ErrNotPresent):
		// unset
	case errors.As(err, &nu):
		// malformed, nu.Value has the bytes
	}

[ToIOError] tags a [*VarError] with [ErrInvalidData] for code that
classifies I/O failures by category.

# Testing

Production code can accept an [*Accessor] built with [WithReader], so tests
never touch the real process environment:

	a := env.NewAccessor(env.WithReader(env.MapReader{"MY_VAR": "test-value"}))

A generated mock of [Reader] is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("MY_VAR").Return("test-value", true)
*/
package env

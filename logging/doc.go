// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory whose
format and level can be set from the environment.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New(logging.WithFormat(logging.FormatText))
	logger.Info("server started", "port", 8080)

# Environment

LOG_FORMAT ("json" or "text") and LOG_LEVEL ("debug", "info", "warn",
"error", optionally with an offset such as "info+2") are read through
package env, so unset and empty values both keep the defaults:

	logger, err := logging.NewFromEnv()
	if err != nil {
		// e.g. "LOG_FORMAT: unknown log format: \"xml\""
	}

Use [OptionsFromEnv] with an [env.Reader] to resolve the same options
from something other than the process environment.
*/
package logging

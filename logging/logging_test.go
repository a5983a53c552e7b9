// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default format is JSON with RFC3339 timestamps", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(WithOutput(&buf))

		logger.Info("test message", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "test message", entry["msg"])
		assert.Equal(t, "value", entry["key"])

		ts, ok := entry["time"].(string)
		require.True(t, ok, "time field should be a string")
		_, err := time.Parse(time.RFC3339, ts)
		assert.NoError(t, err, "timestamp should be valid RFC3339")
	})

	t.Run("default level is INFO", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(WithOutput(&buf))

		logger.Debug("should not appear")
		assert.Empty(t, buf.String(), "DEBUG should be filtered at INFO level")

		logger.Info("should appear")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("text format produces key=value output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(WithFormat(FormatText), WithLevel(slog.LevelDebug), WithOutput(&buf))

		logger.Debug("debug message")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=\"debug message\"")
	})
}

func TestNewHandler_WithLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		level       slog.Level
		logLevel    slog.Level
		shouldWrite bool
	}{
		{"debug logger writes debug", slog.LevelDebug, slog.LevelDebug, true},
		{"info logger filters debug", slog.LevelInfo, slog.LevelDebug, false},
		{"warn logger filters info", slog.LevelWarn, slog.LevelInfo, false},
		{"error logger writes error", slog.LevelError, slog.LevelError, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewHandler(WithLevel(tc.level), WithOutput(&buf)))

			logger.Log(context.TODO(), tc.logLevel, "test")

			if tc.shouldWrite {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestReplaceAttr(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 17, 10, 30, 0, 0, time.UTC)
	result := replaceAttr(nil, slog.Time(slog.TimeKey, now))
	assert.Equal(t, "2026-02-17T10:30:00Z", result.Value.String())

	attr := slog.String("key", "value")
	assert.Equal(t, attr, replaceAttr(nil, attr))
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestJSONOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Output: &buf})

	l.Info("dropped")
	l.Warn("kept", "route", "YYZ-LAX")
	l.Error(errors.New("boom"), "failed")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "YYZ-LAX", lines[0]["route"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})

	l.WithFields(map[string]interface{}{"a": 1, "b": "two"}).WithField("c", true).Debug("fields")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(1), lines[0]["a"])
	assert.Equal(t, "two", lines[0]["b"])
	assert.Equal(t, true, lines[0]["c"])
}

func TestWithContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: "json", Output: &buf})

	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))

	l.WithContext(ctx).Info("with id")
	l.WithContext(context.Background()).Info("without id")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "req-123", lines[0]["request_id"])
	assert.NotContains(t, lines[1], "request_id")
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Format: "text", Output: &buf}).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestDefaultLogger(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	defaultLogger = nil
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() {
		Info("no logger yet")
		WithField("k", "v").Info("fallback")
	})

	var buf bytes.Buffer
	Init(Config{Format: "json", Output: &buf})
	Info("initialised")
	assert.Contains(t, buf.String(), "initialised")
}

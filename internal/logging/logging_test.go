package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelAndFormat(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zerolog.Level
	}{
		{"debug", Config{Level: "debug", Format: FormatJSON}, zerolog.DebugLevel},
		{"upper case level", Config{Level: "WARN", Format: FormatJSON}, zerolog.WarnLevel},
		{"invalid defaults to info", Config{Level: "loud"}, zerolog.InfoLevel},
		{"empty defaults to info", Config{}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.cfg, &buf)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestNewLogger_JSONIncludesTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	l.Info().Ctx(ctx).Str("k", "v").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "01TESTTRACE", entry[TraceIDField])
	assert.Equal(t, "v", entry["k"])
}

func TestNewLogger_NoTraceWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Format: FormatJSON}, &buf)
	l.Info().Msg("plain")

	assert.NotContains(t, buf.String(), TraceIDField)
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "footprint.log")

	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.NoError(t, result.Close(), "second close is a no-op")
}

func TestNewLoggerWithPath_Stderr(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputStderr})
	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "app.log")})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(NewLogger(Config{Format: FormatJSON}, &buf), "cli")
	l.Info().Msg("x")

	assert.Contains(t, buf.String(), `"component":"cli"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Format: FormatJSON}, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestTraceIDs(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.Empty(t, TraceIDFromContext(nil)) //nolint:staticcheck // nil context is handled.

	generated := GetOrGenerateTraceID(context.Background())
	_, err := ulid.Parse(generated)
	require.NoError(t, err, "generated trace IDs are ULIDs")

	ctx := ContextWithTraceID(context.Background(), generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}

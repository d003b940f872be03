package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
		)
		log.Info("hello", logger.Rule("alpha"))
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "rule=alpha")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Component("validator")),
		)
		log.Info("msg")
		assert.Equal(t, "validator", decodeEntry(t, buf)["component"])
	})

	t.Run("extracts values from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				id, ok := ctx.Value(key{}).(string)
				return logger.RequestID(id), ok
			}),
		)

		log.InfoContext(context.WithValue(context.Background(), key{}, "req-42"), "with id")
		assert.Equal(t, "req-42", decodeEntry(t, buf)["request_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "no id")
		_, ok := decodeEntry(t, buf)["request_id"]
		assert.False(t, ok)
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		logAt   slog.Level
		wantOut bool
		check   func(t *testing.T, out string)
	}{
		{
			name:    "development logs debug as text",
			cfg:     logger.Config{Service: "formcheck", Env: "development"},
			logAt:   slog.LevelDebug,
			wantOut: true,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "level=DEBUG")
				assert.Contains(t, out, "service=formcheck")
				assert.Contains(t, out, "env=development")
			},
		},
		{
			name:    "unknown environment falls back to development",
			cfg:     logger.Config{Env: "qa"},
			logAt:   slog.LevelDebug,
			wantOut: true,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "env=development")
				assert.NotContains(t, out, "service=")
			},
		},
		{
			name:    "production logs info as json",
			cfg:     logger.Config{Service: "formcheck", Env: "prod"},
			logAt:   slog.LevelInfo,
			wantOut: true,
			check: func(t *testing.T, out string) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "formcheck", entry["service"])
				assert.Equal(t, logger.EnvProduction, entry["env"])
			},
		},
		{
			name:  "production drops debug",
			cfg:   logger.Config{Env: "production"},
			logAt: slog.LevelDebug,
		},
		{
			name:  "level override",
			cfg:   logger.Config{Env: "staging", Level: "error"},
			logAt: slog.LevelWarn,
		},
		{
			name:    "unknown level keeps environment default",
			cfg:     logger.Config{Env: "development", Level: "loud"},
			logAt:   slog.LevelDebug,
			wantOut: true,
		},
		{
			name:    "format override",
			cfg:     logger.Config{Env: "production", Format: "TEXT"},
			logAt:   slog.LevelInfo,
			wantOut: true,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "env=production")
			},
		},
		{
			name:    "unknown format keeps environment default",
			cfg:     logger.Config{Env: "production", Format: "xml"},
			logAt:   slog.LevelInfo,
			wantOut: true,
			check: func(t *testing.T, out string) {
				assert.True(t, json.Valid([]byte(out)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.NewFromConfig(tt.cfg, logger.WithOutput(buf))
			log.Log(context.Background(), tt.logAt, "msg")

			if !tt.wantOut {
				assert.Empty(t, buf.String())
				return
			}
			require.NotEmpty(t, buf.String())
			if tt.check != nil {
				tt.check(t, buf.String())
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := logger.ParseFormat(" Json ")
	assert.True(t, ok)
	assert.Equal(t, logger.FormatJSON, f)

	_, ok = logger.ParseFormat("")
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"  WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parseLevel(tt.raw), "raw %q", tt.raw)
	}
}

func TestInitDebugOverridesLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "true")

	Init()
	require.NotNil(t, Logger)
	require.True(t, Logger.Enabled(context.Background(), slog.LevelDebug))
}

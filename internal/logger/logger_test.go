package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"newssaar/backend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestInitWithWriter_LowercaseLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelInfo, "text")
	logger.Debug("hidden")
	logger.Warn("feed fetch failed", "module", "feed", "result", "failed")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "module=feed")
}

func TestInitWithWriter_JSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelDebug, "json")
	logger.Info("rendered", "count", 5)

	require.Contains(t, buf.String(), `"level":"info"`)
	require.Contains(t, buf.String(), `"count":5`)
}

package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTelemetryWithoutCollector(t *testing.T) {
	shutdown, err := InitTelemetry(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	shutdown(context.Background())
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)).With("booking_id", 7)

	logger.Debug("claiming seats")
	logger.Info("booking created")

	assert.Contains(t, debugBuf.String(), "claiming seats")
	assert.Contains(t, debugBuf.String(), "booking created")
	assert.NotContains(t, infoBuf.String(), "claiming seats")
	assert.Contains(t, infoBuf.String(), "booking_id=7")
}

package testutil

import (
	"bytes"
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops everything, for tests that don't
// care about log output
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// BufferLogger returns a logger writing JSON lines at debug level into buf
func BufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

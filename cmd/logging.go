package cmd

import (
	"io"
	"log/slog"
	"os"
)

const debugLogEnv = "PDP_DEBUG_LOG"

// logger returns the CLI logger: warnings and errors on stderr
func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// screenLogger returns the logger for the interactive screen. The screen
// owns the terminal, so logs go to $PDP_DEBUG_LOG or nowhere.
func screenLogger() (*slog.Logger, func()) {
	path := os.Getenv(debugLogEnv)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger().Warn("open debug log", "path", path, "err", err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return l, func() { _ = f.Close() }
}

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// setupLogging returns a logger writing to path, or discarding when path is
// empty. The returned file, if any, must be closed by the caller.
func setupLogging(path string, debug bool) (*slog.Logger, *os.File, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

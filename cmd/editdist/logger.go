package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var errLogFormat = errors.New("unsupported log format")

// newLogger returns a text or JSON logger writing to w. Verbose lowers the
// level to debug.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errLogFormat, format)
	}
}

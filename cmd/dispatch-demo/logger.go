package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/napalu/dispatch/util"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger logs to a rotating file when path is set, otherwise to stderr: as text on a terminal,
// as JSON when redirected.
func newLogger(path string, verbose bool) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     28,
		}
		return slog.New(slog.NewJSONHandler(file, opts)), file
	}

	if util.IsTerminal(os.Stderr) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nopCloser{}
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nopCloser{}
}

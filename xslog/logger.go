// Package xslog installs an opinionated process-wide slog logger. Debug
// verbosity and color are gated by the CONTAINER_DEBUG environment variable.
package xslog

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func Auto() io.Closer {
	w := getWriter()

	debug := os.Getenv("CONTAINER_DEBUG") != ""

	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !debug,
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func getWriter() io.WriteCloser {
	return struct {
		io.Writer
		io.Closer
	}{
		os.Stderr,
		io.NopCloser(nil),
	}
}

package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger writing to stdout.
// APP_ENV=dev (or development) uses a human-friendly console writer.
func NewLogger(env string) zerolog.Logger {
	return NewLoggerTo(os.Stdout, env, "")
}

// NewLoggerTo is NewLogger with an explicit sink and level ("" keeps info).
// The CLI logs to stderr so stdout stays clean for results.
func NewLoggerTo(w io.Writer, env, level string) zerolog.Logger {
	out := w
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(out).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		l = l.Level(lvl)
	}
	return l
}

package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// log is the package diagnostic logger. The engine never returns errors for
// recoverable input problems (bad dates, unknown frequencies, malformed
// rows); it absorbs them and reports through this side channel instead.
var log = NewLogger()

// NewLogger creates the default structured logger, writing human-readable
// output to stderr.
func NewLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewLoggerWithWriter creates a structured logger with a custom writer.
// Used by tests to capture diagnostics.
func NewLoggerWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetLogger replaces the package diagnostic logger and returns the previous
// one, so tests can restore it.
func SetLogger(l zerolog.Logger) zerolog.Logger {
	prev := log
	log = l
	return prev
}

// Package logging configures the zerolog logger used by the lab0 CLI.
// All diagnostics go to a single writer (stderr in production) so that
// standard output carries nothing but command results.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger writing to out at info level,
// or debug level when verbose is set.
func New(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// NewStderr returns the production logger: console output on stderr.
func NewStderr(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}

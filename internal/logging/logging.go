// Package logging configures the process-wide zerolog logger.
//
// Diagnostic output always goes to stderr so stdout stays machine
// readable for the JSON output format.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger at the given level writing to stderr.
// Unknown levels fall back to warn.
func Setup(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// Quiet returns a logger that discards everything.
func Quiet() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// Package logger builds the zerolog logger the rest of the app logs
// through.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. Format "console" gets the
// human-readable writer; anything else emits JSON lines.
func New(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if format == "console" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.With().Timestamp().Logger().Level(ParseLevel(level))
}

// ParseLevel converts a level string to a zerolog level, defaulting to
// info on anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

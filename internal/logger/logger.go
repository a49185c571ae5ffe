package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog Logger writing to stderr, so log lines never
// interleave with the menu output on stdout. APP_ENV=dev (or development)
// uses a human-friendly console writer.
func New(env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Package logging configures the process-wide zerolog logger.
// Output goes to stderr so stdout stays machine-readable for --json modes.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger once at startup. An unknown level
// falls back to info; quiet suppresses everything below error.
func Setup(level string, quiet bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if quiet {
		lvl = zerolog.ErrorLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

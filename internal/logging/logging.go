// Package logging sets up the module-wide zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a structured logger. Debug mode switches to human-readable
// console output and lowers the level; otherwise JSON at info level.
func New(debug bool) zerolog.Logger {
	var w io.Writer = os.Stderr
	level := zerolog.InfoLevel
	if debug {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Keep the package-global logger in sync for code using zerolog/log.
	log.Logger = logger
	return logger
}

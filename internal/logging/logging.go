// Package logging builds the zerolog loggers used by the dsakit CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a human-readable console logger writing to w at the given level.
// An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Setup builds a logger with New and installs it as the package-level log.Logger
// and the default context logger.
func Setup(w io.Writer, level string) (zerolog.Logger, error) {
	logger, err := New(w, level)
	if err != nil {
		return logger, err
	}
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	return logger, nil
}

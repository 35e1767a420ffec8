// Package logging sets up the zerolog logger used by the viewer.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LoggerFunc receives plain status messages, e.g. for the status bar log.
type LoggerFunc func(message string)

// New builds a console logger writing to w at the named level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// NewDefault is New on stderr, falling back to info on a bad level name.
func NewDefault(level string) zerolog.Logger {
	logger, err := New(os.Stderr, level)
	if err != nil {
		logger, _ = New(os.Stderr, zerolog.InfoLevel.String())
		logger.Warn().Err(err).Msg("using info level")
	}
	return logger
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// Tee returns a LoggerFunc that writes each message to the logger at info
// level and then forwards it to next, if next is not nil.
func Tee(logger zerolog.Logger, next LoggerFunc) LoggerFunc {
	return func(message string) {
		logger.Info().Msg(message)
		if next != nil {
			next(message)
		}
	}
}

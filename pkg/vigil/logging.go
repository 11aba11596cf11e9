package vigil

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Log verbosity tiers.
const (
	LogLevelError = "error"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// NewLogger returns a zerolog-backed Logger writing to stderr at one of
// the three verbosity tiers. Unknown levels fall back to error-only.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter is NewLogger with an explicit destination, mainly
// for tests.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	zeroLevel := zerolog.ErrorLevel

	switch level {
	case LogLevelDebug:
		zeroLevel = zerolog.DebugLevel
	case LogLevelInfo:
		zeroLevel = zerolog.InfoLevel
	case LogLevelError:
		zeroLevel = zerolog.ErrorLevel
	}

	log := zerolog.New(w).With().Timestamp().Logger().Level(zeroLevel)

	return &zeroLogger{log: log}
}

type zeroLogger struct {
	log zerolog.Logger
}

func (l *zeroLogger) Debug(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Info(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, fields map[string]any) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zeroLogger) Error(msg string, fields map[string]any) {
	l.log.Error().Fields(fields).Msg(msg)
}

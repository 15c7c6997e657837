// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger is a ports.Logger implementation backed by zerolog.
type ZeroLogger struct {
	l zerolog.Logger
}

// New creates a logger writing human-readable output to stderr. Non-verbose
// loggers only surface warnings and errors.
func New(verbose bool) *ZeroLogger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, verbose)
}

// NewWithWriter creates a logger targeting the given writer.
func NewWithWriter(w io.Writer, verbose bool) *ZeroLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &ZeroLogger{
		l: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (z *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	z.l.Debug().Fields(fields).Msg(msg)
}

func (z *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	z.l.Info().Fields(fields).Msg(msg)
}

func (z *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	z.l.Warn().Fields(fields).Msg(msg)
}

func (z *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	z.l.Error().Err(err).Fields(fields).Msg(msg)
}

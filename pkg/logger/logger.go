package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a printf-style facade over zerolog.
type Logger struct {
	zl zerolog.Logger
}

func New() *Logger {
	return NewWithWriter(os.Stdout)
}

func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		zl: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// SetLevel changes the process-wide level; unknown names are ignored.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Request logs one served HTTP request as structured fields.
func (l *Logger) Request(method, path string, status int, latency time.Duration, clientIP string) {
	event := l.zl.Info()
	if status >= 500 {
		event = l.zl.Error()
	} else if status >= 400 {
		event = l.zl.Warn()
	}
	event.
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("latency", latency).
		Str("client_ip", clientIP).
		Msg("request")
}

// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a zerolog level in configuration.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config controls the global logger setup.
type Config struct {
	Level LogLevel
	// Pretty switches from JSON to a console-friendly format
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var defaultLogger zerolog.Logger

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}

// Configure rebuilds the global logger. Unknown levels fall back to info.
func Configure(config Config) {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(config.Level))

	writer := out
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

func parseLevel(level LogLevel) zerolog.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

// Fatal starts a fatal-level event; zerolog exits after the message is written.
func Fatal() *zerolog.Event { return defaultLogger.Fatal() }

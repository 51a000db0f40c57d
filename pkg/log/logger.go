// Package log provides structured logging for gokrr built on zerolog.
//
// Library packages stay silent; logging happens at the boundaries (the CLI
// and examples). The package keeps one process-wide logger so that typed
// errors implementing zerolog.LogObjectMarshaler render their structured
// fields consistently everywhere.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newDefault()
)

func newDefault() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Setup configures the global logger with the given level ("debug", "info",
// "warn", "error") and human-readable console output. Unknown levels fall
// back to info.
func Setup(level string) {
	Configure(os.Stderr, level, true)
}

// Configure sets the global logger output, level and format. With console
// false the output is newline-delimited JSON.
func Configure(w io.Writer, level string, console bool) {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Logger().Level(ToLevel(level))

	mu.Lock()
	logger = l
	mu.Unlock()
}

// ToLevel converts a level name to a zerolog level.
func ToLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a logger pre-populated with a model name, the conventional
// context for fit/predict progress events.
func With(modelName string) zerolog.Logger {
	return Logger().With().Str(ModelKey, modelName).Logger()
}

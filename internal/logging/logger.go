// Package logging provides the diagnostic logger used across create-release-it.
// User-facing output goes through the command's writers; this logger carries
// debug detail and tolerated-failure warnings on stderr.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Options configures New.
type Options struct {
	Level   string
	Format  string // "pretty" (default) or "json"
	Output  io.Writer
	Verbose bool
}

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New creates a logger from opts.
func New(opts Options) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}
	if opts.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:          output,
			NoColor:      true,
			PartsExclude: []string{zerolog.TimestampFieldName},
		}
	}

	level, ok := ParseLevel(opts.Level)
	if !ok {
		level = zerolog.WarnLevel
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{Logger: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level. Empty and unknown names
// report ok=false.
func ParseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.WarnLevel, false
	}
}

// WithComponent returns a logger with a component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With().Str("component", component).Logger()}
}

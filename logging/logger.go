// Package logging provides the zerolog logger shared by the API client and
// the CLI. Output goes to stderr: human-readable on terminals, JSON when
// piped or when LOG_FORMAT=json.
//
//	log := logging.Default()
//	log.Info().Str("path", "/main/info").Msg("fetching protocol info")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	// defaultLogger is the process-wide logger.
	defaultLogger zerolog.Logger

	// Nop discards everything.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = createDefaultLogger()
}

func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr
	if isTerminal() && os.Getenv("LOG_FORMAT") != "json" {
		writer = consoleWriter(os.Stderr)
	}

	level := levelFromEnv()
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

// New creates a logger writing JSON lines to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(defaultLogger.GetLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger on stderr.
func NewConsole() zerolog.Logger {
	return New(consoleWriter(os.Stderr))
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// levelFromEnv reads LOG_LEVEL, then DEBUG, defaulting to info.
func levelFromEnv() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

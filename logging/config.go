package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger settings
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error
	Level string

	// Format is json, console or auto
	Format string

	// Output is where logs go
	Output io.Writer
}

// Configure builds a logger from cfg and installs it as the default.
func Configure(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
	case "console":
		out = consoleWriter(out)
	default:
		if f, ok := out.(*os.File); ok && f == os.Stderr && isTerminal() {
			out = consoleWriter(out)
		}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
	SetDefault(logger)
	return logger
}

// Package logging builds the diagnostic logger. User-facing output does not go through it.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/terminal"
)

// DefaultLevel keeps debug tracing quiet unless asked for.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human-readable output instead of JSON lines
}

// New returns a logger for cfg. An unknown level is an error.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.TimeOnly, NoColor: !terminal.IsTerminalWriter(writer)}
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel converts a config value into a level. Empty means DefaultLevel.
func ParseLevel(value string) (zerolog.Level, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(trimmed))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf(messages.ConfigInvalidLogLevelFmt, value, err)
	}
	return level, nil
}

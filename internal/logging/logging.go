// Package logging builds the slog logger used by the command line.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned for a level name ParseLevel does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// DefaultLevel shows version-gate warnings and errors only.
const DefaultLevel = slog.LevelWarn

// ParseLevel converts a level name to slog.Level.
// Valid levels: debug, info, warn (or warning), error. Empty means DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("%w: %q (must be debug, info, warn or error)", ErrInvalidLevel, s)
	}
}

// Resolve picks the level from the command line switches, falling back to
// the configured level name. --verbose wins over --quiet.
func Resolve(verbose, quiet bool, configured string) (slog.Level, error) {
	switch {
	case verbose:
		return slog.LevelDebug, nil
	case quiet:
		return slog.LevelError, nil
	default:
		return ParseLevel(configured)
	}
}

// New returns a text logger writing to w. Timestamps are only kept at
// debug level, where they help follow concurrent page writes.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if level > slog.LevelDebug {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Package logging configures the log/slog logger used by the gnode binary.
//
// The libraries (node, builder, bfs, dfs, decl) never log; they report
// through return values and hooks. Only the command layer logs, on stderr,
// so stdout stays reserved for results.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognized name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config configures the logger. A zero Config logs Info and above as text
// on stderr.
type Config struct {
	// Level is the minimum level; one of debug, info, warn, error.
	Level string

	// JSON switches the handler from text to JSON lines.
	JSON bool

	// Writer receives log output. Default: os.Stderr.
	Writer io.Writer
}

// ParseLevel maps a level name, case-insensitive, to a slog.Level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("service", "gnode"), nil
}

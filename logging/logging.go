// Package logging builds the structured loggers used by metronav.
//
// Every logger is a *slog.Logger. The "text" and "logfmt" formats are
// rendered by charmbracelet/log, whose Logger is a slog.Handler; "json"
// uses the standard JSON handler.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	clog "github.com/charmbracelet/log"
)

var (
	// ErrBadLevel indicates an unsupported level name.
	ErrBadLevel = errors.New("logging: unsupported level")

	// ErrBadFormat indicates an unsupported output format.
	ErrBadFormat = errors.New("logging: unsupported format")
)

// Output formats.
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// ParseLevel maps debug, info, warn (or warning) and error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatLogfmt, FormatJSON, "":
		return true
	}

	return false
}

// New returns a logger writing to w at the given level and format.
// An empty format selects FormatText.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	case FormatText, FormatLogfmt, "":
		formatter := clog.TextFormatter
		if strings.EqualFold(format, FormatLogfmt) {
			formatter = clog.LogfmtFormatter
		}
		h := clog.NewWithOptions(w, clog.Options{
			Level:           clog.Level(lvl),
			ReportTimestamp: true,
			Formatter:       formatter,
			Prefix:          "metronav",
		})
		return slog.New(h), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

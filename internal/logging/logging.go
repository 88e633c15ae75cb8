package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parsing log level %q: %w", s, err)
	}

	return level, nil
}

// Setup sets slog's default logger to JSON on stdout at the named level.
// An unknown level falls back to info and is reported once.
func Setup(level string) {
	SetupWriter(os.Stdout, level)
}

// SetupWriter is Setup with a custom destination, for the TUI log file.
func SetupWriter(w io.Writer, level string) {
	lvl, err := ParseLevel(level)

	slog.SetDefault(slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}),
	))

	if err != nil {
		slog.Warn("falling back to info logging", "error", err)
	}
}

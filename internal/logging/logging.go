package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// File receives log output. Logs are discarded when empty, since the
	// terminal belongs to the UI.
	File string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// New constructs a slog logger according to opts. The returned function
// closes the log file, if any.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, ok := levels[opts.Level]
	if opts.Level == "" {
		level, ok = levels[DefaultLevel], true
	}
	if !ok {
		return nil, nil, fmt.Errorf("invalid log level: %q", opts.Level)
	}

	writers := opts.AdditionalWriters
	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}

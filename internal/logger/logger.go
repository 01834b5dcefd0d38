// Package logger holds the process-wide logger of the pgc command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	globalLogger *slog.Logger
	mu           sync.RWMutex
)

// Level returns the log level for a verbosity count: 0 logs warnings, 1
// informational records and 2 or more debug records. Quiet mode only
// logs errors.
func Level(verbose int, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger writing records of at least level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetGlobal sets the global logger
func SetGlobal(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// Get returns the global logger instance, or an informational logger on
// stderr when none was set.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger != nil {
		return globalLogger
	}
	return New(os.Stderr, slog.LevelInfo)
}

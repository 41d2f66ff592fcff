// Package logger writes structured logs to a file. The terminal belongs to
// the TUI, so nothing is ever written to stdout or stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level is the minimum severity written to the log.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel reads a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	base     *slog.Logger
)

// Init opens path for appending and routes every logger to it. Calling Init
// again switches to the new file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// SetLevel changes the minimum level of every logger, including ones
// already handed out.
func SetLevel(level Level) {
	levelVar.Set(level.slogLevel())
}

func current() *slog.Logger {
	if base == nil {
		// not initialized: drop everything
		base = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
	}
	return base
}

// Logger returns the root logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current()
}

// Component returns a logger tagged with a component name.
//
//	log := logger.Component("publish")
//	log.Warn("droppable resized", "droppable", id)
func Component(name string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current().With(slog.String("component", name))
}

// Close closes the log file. Later logs are dropped until Init is called.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

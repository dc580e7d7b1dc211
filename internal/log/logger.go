// Package log wraps charmbracelet/log with the printf-style leveled API the
// rest of the module uses. Libraries log through this package only; nothing
// here writes to stdout, so command output stays clean.
package log

import (
	"io"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Level is the minimum severity that gets written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a string to a Level (case insensitive).
// Unrecognized values fall back to LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

func (l Level) charm() charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelInfo:
		return charmlog.InfoLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.WarnLevel
	}
}

var (
	mu     sync.RWMutex
	logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.WarnLevel})
)

// Init points the global logger at w with the given minimum level.
// Called once from the entry point before any output.
func Init(w io.Writer, minLevel Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = charmlog.NewWithOptions(w, charmlog.Options{
		Level:        minLevel.charm(),
		ReportCaller: false,
	})
}

// Disable routes all logging to io.Discard. The default state.
func Disable() {
	Init(io.Discard, LevelError)
}

func get() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(format string, args ...any) { get().Debugf(format, args...) }
func Info(format string, args ...any)  { get().Infof(format, args...) }
func Warn(format string, args ...any)  { get().Warnf(format, args...) }
func Error(format string, args ...any) { get().Errorf(format, args...) }

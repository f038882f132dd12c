// Package logx provides the engine's leveled logger: a thin wrapper over
// the standard library's log.Logger that adds severity filtering and a
// consistent "[LEVEL] subsystem: message" line format. No logging
// dependency appears anywhere in the example corpus this engine is
// grounded on, so this stays deliberately small rather than reaching
// outside the corpus for one (see DESIGN.md).
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level mirrors the ecs package's ErrorSeverity ordering (info < warning <
// error < critical) so callers can reason about the two consistently.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal leveled logger safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	out       *log.Logger
	minLevel  Level
	subsystem string
}

// New creates a Logger writing to w, named subsystem, filtering anything
// below minLevel.
func New(w io.Writer, subsystem string, minLevel Level) *Logger {
	return &Logger{
		out:       log.New(w, "", log.LstdFlags),
		minLevel:  minLevel,
		subsystem: subsystem,
	}
}

// Default returns a Logger writing to stderr at LevelInfo, named subsystem.
func Default(subsystem string) *Logger {
	return New(os.Stderr, subsystem, LevelInfo)
}

// WithSubsystem returns a copy of l scoped to a different subsystem name,
// sharing the same output and level filter.
func (l *Logger) WithSubsystem(subsystem string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{out: l.out, minLevel: l.minLevel, subsystem: subsystem}
}

// SetLevel changes the minimum level that will be emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("[%s] %s: %s", level, l.subsystem, msg)
}

func (l *Logger) Debugf(format string, args ...any)    { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)      { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)      { l.log(LevelWarning, format, args...) }
func (l *Logger) Errorf(format string, args ...any)     { l.log(LevelError, format, args...) }
func (l *Logger) Criticalf(format string, args ...any)  { l.log(LevelCritical, format, args...) }

// Warn matches the signature expected by ecs.Registry.SetWarnLogger and
// ecs.BaseSystem.SetWarnLogger.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarning, format, args...) }

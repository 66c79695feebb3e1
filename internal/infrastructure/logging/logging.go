// Package logging wraps the standard library logger with the level
// filtering the rest of this codebase's config.LoggingConfig expects,
// matching the plain log.Printf/log.Fatalf style used throughout the
// command-line entry points.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger filters Printf-style calls below a configured level before
// delegating to a stdlib *log.Logger.
type Logger struct {
	level  Level
	logger *log.Logger
}

// New builds a Logger writing to w (os.Stdout if nil).
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{level: level, logger: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf(prefix(level)+format, args...)
}

func prefix(level Level) string {
	switch level {
	case LevelDebug:
		return "[DEBUG] "
	case LevelWarn:
		return "[WARN] "
	case LevelError:
		return "[ERROR] "
	default:
		return "[INFO] "
	}
}

// SPDX-License-Identifier: MIT

// Package logging provides the component logger used by the sparsemat driver.
// Every line is "[timestamp] [component] [LEVEL] message" and carries no color,
// so it is safe to redirect into a file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level orders log severities; a Logger drops entries below its threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	levelOff
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Verbosity names accepted by ParseVerbosity.
const (
	VerbosityQuiet   = "quiet"
	VerbosityNormal  = "normal"
	VerbosityVerbose = "verbose"
	VerbosityDebug   = "debug"
)

// ParseVerbosity maps a verbosity name onto the lowest level that is written.
//
//	quiet   → nothing
//	normal  → WARN and ERROR (default for "")
//	verbose → INFO and above
//	debug   → everything
func ParseVerbosity(v string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case VerbosityQuiet:
		return levelOff, nil
	case "", VerbosityNormal:
		return LevelWarn, nil
	case VerbosityVerbose:
		return LevelInfo, nil
	case VerbosityDebug:
		return LevelDebug, nil
	default:
		return 0, fmt.Errorf("logging: unknown verbosity %q", v)
	}
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// getSessionID returns or creates the id shared by every logger of this process.
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// GetSessionID returns the current process-wide session id.
func GetSessionID() string { return getSessionID() }

// Logger writes leveled, component-tagged lines. Safe for concurrent use.
type Logger struct {
	component string
	threshold Level
	logger    *log.Logger
	file      *os.File
	mu        sync.Mutex
	closeOnce sync.Once
	now       func() time.Time
}

// New returns a logger that writes to w.
func New(component string, w io.Writer, threshold Level) *Logger {
	return &Logger{
		component: component,
		threshold: threshold,
		logger:    log.New(w, "", 0), // timestamps are formatted by formatLogEntry
		now:       time.Now,
	}
}

// NewFile opens (or creates) path in append mode and logs into it.
// The caller must Close the returned Logger.
func NewFile(component, path string, threshold Level) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := New(component, f, threshold)
	l.file = f

	return l, nil
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *Logger { return New("discard", io.Discard, levelOff) }

// With returns a logger for another component sharing the same sink and threshold.
func (l *Logger) With(component string) *Logger {
	return &Logger{
		component: component,
		threshold: l.threshold,
		logger:    l.logger,
		now:       l.now,
	}
}

// formatLogEntry creates "[timestamp] [component] [LEVEL] message".
func (l *Logger) formatLogEntry(level Level, message string) string {
	timestamp := l.now().Format("2006-01-02 15:04:05.000")
	return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, l.component, levelNames[level], message)
}

func (l *Logger) logf(level Level, format string, v ...any) {
	if level < l.threshold {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Println(l.formatLogEntry(level, fmt.Sprintf(format, v...)))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...any) { l.logf(LevelInfo, format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...any) { l.logf(LevelWarn, format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }

// SessionID returns the process-wide session id.
func (l *Logger) SessionID() string { return getSessionID() }

// Close closes the log file, if any. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}

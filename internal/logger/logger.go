// Package logger provides the leveled, field-aware logger shared by the bank
// core and the shell. Output is line-oriented text; New writes it to a
// rotating file so the interactive terminal stays clean.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields are key/value pairs rendered as "[k=v ...]" after the level.
type Fields map[string]interface{}

// LogLevel orders severities; lines below the configured level are dropped.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

var levelNames = map[LogLevel]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

// Logger writes leveled lines to a single writer. It is safe for
// concurrent use.
type Logger struct {
	mu          sync.RWMutex
	level       LogLevel
	out         *log.Logger
	closer      io.Closer
	serviceName string
}

// New creates a logger that appends to <logDir>/app.log, rotated by size.
func New(logDir, serviceName, level string) (*Logger, error) {
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "abcbank")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
		Compress:   true,
	}

	l := NewWithWriter(fileWriter, serviceName, level)
	l.closer = fileWriter
	return l, nil
}

// NewWithWriter creates a logger writing to w. Tests pass io.Discard.
func NewWithWriter(w io.Writer, serviceName, level string) *Logger {
	return &Logger{
		level:       parseLevel(level),
		out:         log.New(w, "", log.LstdFlags),
		serviceName: serviceName,
	}
}

// Discard returns a logger that drops everything. Constructors that accept a
// nil *Logger fall back to it.
func Discard() *Logger {
	return NewWithWriter(io.Discard, "", "CRITICAL")
}

// Close releases the rotating file, if any. It is safe to call twice.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// logWithFields is always called directly by an exported method, so the
// user's call site sits two frames up.
func (l *Logger) logWithFields(level LogLevel, msg string, fields Fields) {
	l.mu.RLock()
	currentLevel := l.level
	service := l.serviceName
	l.mu.RUnlock()

	if level < currentLevel {
		return
	}

	prefix := levelNames[level]
	if service != "" {
		prefix = fmt.Sprintf("[%s] [%s]", prefix, service)
	} else {
		prefix = fmt.Sprintf("[%s]", prefix)
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
		}
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, " "))
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	_ = l.out.Output(0, fmt.Sprintf("%s %s:%d %s", prefix, file, line, msg))
}

func (l *Logger) Info(msg string) { l.logWithFields(INFO, msg, nil) }
func (l *Logger) Warn(msg string) { l.logWithFields(WARNING, msg, nil) }

func (l *Logger) Errorf(format string, args ...any) {
	l.logWithFields(ERROR, fmt.Sprintf(format, args...), nil)
}

// WithFields returns an Entry that prefixes every line with fields, sorted
// by key.
func (l *Logger) WithFields(fields Fields) *Entry {
	return &Entry{logger: l, fields: fields}
}

// Entry is a logger bound to a fixed set of fields.
type Entry struct {
	logger *Logger
	fields Fields
}

func (e *Entry) Debug(msg string) { e.logger.logWithFields(DEBUG, msg, e.fields) }
func (e *Entry) Info(msg string)  { e.logger.logWithFields(INFO, msg, e.fields) }
func (e *Entry) Warn(msg string)  { e.logger.logWithFields(WARNING, msg, e.fields) }

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.logWithFields(WARNING, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.logWithFields(ERROR, fmt.Sprintf(format, args...), e.fields)
}

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}

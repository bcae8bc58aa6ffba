package editor

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled, field-carrying logging for the editor. The
// terminal is owned by the screen, so output goes to a file.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	output   io.Writer
	fields   map[string]any
	disabled bool
}

// NewLogger creates a logger writing to w at the given minimum level.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		level:  level,
		output: w,
		fields: make(map[string]any),
	}
}

// NewFileLogger opens (or creates) path in append mode. An empty path
// yields a disabled logger.
func NewFileLogger(path string, level LogLevel) (*Logger, error) {
	if path == "" {
		return &Logger{disabled: true}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return NewLogger(f, level), nil
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	newFields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		newFields[k] = v
	}
	newFields[key] = value

	return &Logger{
		level:    l.level,
		output:   l.output,
		fields:   newFields,
		disabled: l.disabled,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) { l.log(LogLevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) { l.log(LogLevelWarn, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || l.output == nil || level < l.level {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
		}
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"resumeforge/internal/logging/types"
)

// MultiLogger fans every entry out to all registered adapters. Derived
// loggers from WithField share the parent's adapter set.
type MultiLogger struct {
	adapters map[string]types.Adapter
	level    Level
	fields   map[string]interface{}
	mu       sync.RWMutex
}

func NewMultiLogger() *MultiLogger {
	return &MultiLogger{
		adapters: make(map[string]types.Adapter),
		level:    InfoLevel,
		fields:   make(map[string]interface{}),
	}
}

func (l *MultiLogger) Debug(message string, fields ...map[string]interface{}) {
	l.log(DebugLevel, message, fields...)
}

func (l *MultiLogger) Info(message string, fields ...map[string]interface{}) {
	l.log(InfoLevel, message, fields...)
}

func (l *MultiLogger) Warn(message string, fields ...map[string]interface{}) {
	l.log(WarnLevel, message, fields...)
}

func (l *MultiLogger) Error(message string, fields ...map[string]interface{}) {
	l.log(ErrorLevel, message, fields...)
}

func (l *MultiLogger) log(level Level, message string, fields ...map[string]interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	entry := &types.Entry{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Fields:    l.mergeFields(fields...),
	}

	for name, adapter := range l.adapters {
		if err := adapter.Write(entry); err != nil {
			// Adapter failures go to stderr to avoid recursing into logging.
			fmt.Fprintf(os.Stderr, "logging adapter %s error: %v\n", name, err)
		}
	}
}

func (l *MultiLogger) WithField(key string, value interface{}) Logger {
	fields := l.copyFields()
	fields[key] = value
	return &MultiLogger{adapters: l.adapters, level: l.level, fields: fields}
}

func (l *MultiLogger) WithFields(fields map[string]interface{}) Logger {
	merged := l.copyFields()
	for k, v := range fields {
		merged[k] = v
	}
	return &MultiLogger{adapters: l.adapters, level: l.level, fields: merged}
}

func (l *MultiLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *MultiLogger) AddAdapter(adapter types.Adapter) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := adapter.Name()
	if _, exists := l.adapters[name]; exists {
		return fmt.Errorf("adapter %s already exists", name)
	}
	l.adapters[name] = adapter
	return nil
}

func (l *MultiLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var failures []string
	for name, adapter := range l.adapters {
		if err := adapter.Close(); err != nil {
			failures = append(failures, fmt.Sprintf("adapter %s: %v", name, err))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("failed to close adapters: %s", strings.Join(failures, ", "))
	}
	return nil
}

func (l *MultiLogger) copyFields() map[string]interface{} {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return fields
}

func (l *MultiLogger) mergeFields(extra ...map[string]interface{}) map[string]interface{} {
	fields := l.copyFields()
	for _, m := range extra {
		for k, v := range m {
			fields[k] = v
		}
	}
	return fields
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

package types

import "time"

// Level is the severity of a log entry.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// Entry is one structured log record handed to every adapter.
type Entry struct {
	Level     Level                  `json:"level"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Adapter is a log sink. Write must be safe for concurrent use.
type Adapter interface {
	Write(entry *Entry) error
	Close() error
	Health() error
	Name() string
}

// Logger is the structured logging surface used across the service.
type Logger interface {
	Debug(message string, fields ...map[string]interface{})
	Info(message string, fields ...map[string]interface{})
	Warn(message string, fields ...map[string]interface{})
	Error(message string, fields ...map[string]interface{})

	// WithField and WithFields return derived loggers that attach the
	// given fields to every subsequent entry.
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger

	SetLevel(level Level)
	AddAdapter(adapter Adapter) error
	Close() error
}

package logging

import "resumeforge/internal/logging/types"

// Aliases so callers only import the logging package.
type Level = types.Level
type Entry = types.Entry
type Adapter = types.Adapter
type Logger = types.Logger

const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
)

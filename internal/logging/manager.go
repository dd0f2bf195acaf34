package logging

import (
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/logging/adapters"
)

// Manager owns the process-wide logger and its adapters.
type Manager struct {
	logger *MultiLogger
}

func NewManager() *Manager {
	return &Manager{logger: NewMultiLogger()}
}

// Initialize configures the logger from config. With no adapter blocks a
// single stdout adapter in the configured format is used.
func (m *Manager) Initialize(cfg *config.Config) error {
	m.logger.SetLevel(ParseLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) == 0 {
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{
			Format: cfg.Logging.Format,
		})
		return m.logger.AddAdapter(adapter)
	}

	for _, block := range cfg.Logging.Adapters {
		if !block.Enabled {
			continue
		}
		adapter, err := newAdapter(AdapterConfig{
			Name:    block.Name,
			Type:    block.Type,
			Options: block.Options,
		})
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", block.Name, err)
		}
		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", block.Name, err)
		}
	}
	return nil
}

func (m *Manager) GetLogger() Logger {
	return m.logger
}

func (m *Manager) Close() error {
	return m.logger.Close()
}

var globalManager *Manager

// InitializeLogging sets up the global logging system.
func InitializeLogging(cfg *config.Config) error {
	globalManager = NewManager()
	return globalManager.Initialize(cfg)
}

// GetGlobalLogger returns the global logger. Before InitializeLogging
// runs it lazily installs a JSON stdout logger, so early and test callers
// always get a working logger.
func GetGlobalLogger() Logger {
	if globalManager == nil {
		manager := NewManager()
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: "json"})
		manager.logger.AddAdapter(adapter)
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging flushes and closes the global logging system.
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// WithRequestID returns the global logger bound to a request id.
func WithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

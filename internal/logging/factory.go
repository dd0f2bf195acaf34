package logging

import (
	"fmt"
	"time"

	"resumeforge/internal/logging/adapters"
	"resumeforge/internal/logging/types"
)

// AdapterConfig is one adapter block from the logging configuration.
type AdapterConfig struct {
	Name    string
	Type    string
	Options map[string]interface{}
}

// newAdapter builds one adapter from its config block.
func newAdapter(cfg AdapterConfig) (types.Adapter, error) {
	switch cfg.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(cfg.Name, adapters.StdoutConfig{
			Format: stringOption(cfg.Options, "format", "json"),
		}), nil

	case "file":
		return adapters.NewFileAdapter(cfg.Name, adapters.FileConfig{
			FilePath:    stringOption(cfg.Options, "file_path", ""),
			Format:      stringOption(cfg.Options, "format", "json"),
			MaxSize:     int64Option(cfg.Options, "max_size", 0),
			MaxBackups:  intOption(cfg.Options, "max_backups", 10),
			SyncOnWrite: boolOption(cfg.Options, "sync_on_write", false),
		})

	case "betterstack":
		return adapters.NewBetterstackAdapter(cfg.Name, adapters.BetterstackConfig{
			SourceToken: stringOption(cfg.Options, "source_token", ""),
			Endpoint:    stringOption(cfg.Options, "endpoint", ""),
			MaxRetries:  intOption(cfg.Options, "max_retries", 3),
			Timeout:     durationOption(cfg.Options, "timeout", 30*time.Second),
		})

	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", cfg.Type)
	}
}

// Option readers tolerate the loose types yaml produces for untyped maps.

func stringOption(options map[string]interface{}, key, defaultValue string) string {
	if s, ok := options[key].(string); ok {
		return s
	}
	return defaultValue
}

func intOption(options map[string]interface{}, key string, defaultValue int) int {
	switch v := options[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return defaultValue
}

func int64Option(options map[string]interface{}, key string, defaultValue int64) int64 {
	switch v := options[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return defaultValue
}

func boolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if b, ok := options[key].(bool); ok {
		return b
	}
	return defaultValue
}

func durationOption(options map[string]interface{}, key string, defaultValue time.Duration) time.Duration {
	if s, ok := options[key].(string); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return defaultValue
}

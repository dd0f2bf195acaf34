package adapters

import (
	"fmt"
	"os"
	"sync"

	"resumeforge/internal/logging/types"
)

// StdoutAdapter writes log entries to standard output.
type StdoutAdapter struct {
	name   string
	format string
	mu     sync.Mutex
}

// StdoutConfig configures the stdout adapter.
type StdoutConfig struct {
	Format string `yaml:"format"` // json or text
}

func NewStdoutAdapter(name string, config StdoutConfig) *StdoutAdapter {
	return &StdoutAdapter{name: name, format: config.Format}
}

func (a *StdoutAdapter) Write(entry *types.Entry) error {
	line, err := encodeEntry(entry, a.format)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = fmt.Fprintln(os.Stdout, line)
	return err
}

func (a *StdoutAdapter) Close() error { return nil }

func (a *StdoutAdapter) Health() error { return nil }

func (a *StdoutAdapter) Name() string { return a.name }

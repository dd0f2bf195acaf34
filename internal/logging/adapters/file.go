package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"resumeforge/internal/logging/types"
)

// FileAdapter writes log entries to a file with size-based rotation.
// Rotated files keep the original path plus a timestamp suffix.
type FileAdapter struct {
	name    string
	config  FileConfig
	file    *os.File
	written int64
	mu      sync.Mutex
}

// FileConfig configures the file adapter.
type FileConfig struct {
	FilePath    string `yaml:"file_path"`
	Format      string `yaml:"format"`       // json or text
	MaxSize     int64  `yaml:"max_size"`     // rotate above this many bytes, 0 disables rotation
	MaxBackups  int    `yaml:"max_backups"`  // rotated files to keep
	SyncOnWrite bool   `yaml:"sync_on_write"`
}

func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = 10
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	a := &FileAdapter{name: name, config: config}
	if err := a.open(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return a, nil
}

func (a *FileAdapter) Write(entry *types.Entry) error {
	line, err := encodeEntry(entry, a.config.Format)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.MaxSize > 0 && a.written >= a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	n, err := a.file.WriteString(line + "\n")
	if err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	a.written += int64(n)

	if a.config.SyncOnWrite {
		return a.file.Sync()
	}
	return nil
}

func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return fmt.Errorf("log file is not open")
	}
	if _, err := a.file.Stat(); err != nil {
		return fmt.Errorf("log file is not accessible: %w", err)
	}
	return nil
}

func (a *FileAdapter) Name() string { return a.name }

func (a *FileAdapter) open() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}
	a.file = file
	a.written = stat.Size()
	return nil
}

func (a *FileAdapter) rotate() error {
	if err := a.file.Close(); err != nil {
		return err
	}
	a.file = nil

	backup := a.config.FilePath + "." + time.Now().Format("20060102-150405")
	if err := os.Rename(a.config.FilePath, backup); err != nil {
		return err
	}

	a.pruneBackups()
	return a.open()
}

// pruneBackups deletes the oldest rotated files beyond MaxBackups. Errors
// are reported to stderr; a failed prune must not break logging.
func (a *FileAdapter) pruneBackups() {
	dir := filepath.Dir(a.config.FilePath)
	base := filepath.Base(a.config.FilePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list log backups: %v\n", err)
		return
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && name != base && strings.HasPrefix(name, base+".") {
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	if len(backups) <= a.config.MaxBackups {
		return
	}

	// Backup names embed the rotation timestamp, so ordering by name is
	// ordering by age.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	for _, backup := range backups[a.config.MaxBackups:] {
		if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "failed to remove log backup %s: %v\n", backup, err)
		}
	}
}

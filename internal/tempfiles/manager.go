package tempfiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"media-picker/internal/filesystem"
	"media-picker/internal/logging"
	"media-picker/internal/metrics"

	"github.com/google/uuid"
)

// DefaultPrefix marks every file this picker creates.
const DefaultPrefix = "advanced_image_picker_"

// ErrCleanupFailed is matched by every Purge failure.
var ErrCleanupFailed = errors.New("cleanup failed")

// CleanupError wraps the I/O error that stopped a purge.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string { return e.Err.Error() }

// Unwrap exposes both the sentinel and the underlying I/O error.
func (e *CleanupError) Unwrap() []error { return []error{ErrCleanupFailed, e.Err} }

// Manager issues and purges temp files under one directory and prefix.
type Manager struct {
	dir    string
	prefix string
	retry  filesystem.RetryConfig
	remove func(path string, config filesystem.RetryConfig) error
}

// NewManager returns a Manager. An empty dir means os.TempDir(), an empty
// prefix means DefaultPrefix.
func NewManager(dir, prefix string) *Manager {
	if dir == "" {
		dir = os.TempDir()
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Manager{
		dir:    dir,
		prefix: prefix,
		retry:  filesystem.DefaultRetryConfig(),
		remove: filesystem.RemoveAllWithRetry,
	}
}

// Dir returns the managed directory.
func (m *Manager) Dir() string { return m.dir }

// Prefix returns the owner prefix.
func (m *Manager) Prefix() string { return m.prefix }

// IssuePath returns a fresh path for a file with the given extension. The
// file itself is not created.
func (m *Manager) IssuePath(ext string) string {
	name := m.prefix + uuid.New().String()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	metrics.TempFilesIssued.Inc()
	return filepath.Join(m.dir, name)
}

// Owns reports whether name carries the owner prefix.
func (m *Manager) Owns(name string) bool {
	return strings.HasPrefix(name, m.prefix)
}

// Purge deletes every owned entry in the directory, directories included
// with their contents. It stops at the first failure and returns a
// *CleanupError; entries after it are left in place.
func (m *Manager) Purge() (int, error) {
	entries, err := filesystem.ReadDirWithRetry(m.dir, m.retry)
	if err != nil {
		metrics.CleanupFailures.Inc()
		return 0, &CleanupError{Path: m.dir, Err: err}
	}

	removed := 0
	for _, entry := range entries {
		if !m.Owns(entry.Name()) {
			continue
		}

		path := filepath.Join(m.dir, entry.Name())
		if err := m.remove(path, m.retry); err != nil {
			logging.Error("Failed to remove temp file %s: %v", path, err)
			metrics.CleanupFailures.Inc()
			return removed, &CleanupError{Path: path, Err: err}
		}

		removed++
		metrics.CleanupFilesRemoved.Inc()
	}

	logging.Info("Removed %d temp files from %s", removed, m.dir)
	return removed, nil
}

// GetStats reports owned files and their total size for the metrics collector.
func (m *Manager) GetStats() (metrics.Stats, error) {
	entries, err := filesystem.ReadDirWithRetry(m.dir, m.retry)
	if err != nil {
		return metrics.Stats{}, fmt.Errorf("failed to list %s: %w", m.dir, err)
	}

	var stats metrics.Stats
	for _, entry := range entries {
		if !m.Owns(entry.Name()) || entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat
			continue
		}
		stats.OwnedFiles++
		stats.OwnedBytes += info.Size()
	}
	return stats, nil
}

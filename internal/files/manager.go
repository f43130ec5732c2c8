package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions = 0o755

	journalFile  = "journal.json"
	databaseFile = "vibe.db"
	logFile      = "vibe.log"
)

// Manager centralizes where the journal and its side files live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.vibe (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory holding the journal.
func (m *Manager) BasePath() string {
	return m.basePath
}

// JournalPath is the JSON file used by the file backend.
func (m *Manager) JournalPath() string {
	return filepath.Join(m.basePath, journalFile)
}

// DatabasePath is the SQLite database used by the sqlite backend.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, databaseFile)
}

// LogPath is the default log file for every command and the TUI.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, logFile)
}

// EnsureBase guarantees the base directory exists.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

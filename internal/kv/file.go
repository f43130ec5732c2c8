package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// FileSlot stores the blob in a single file.
type FileSlot struct {
	path  string
	limit int64
}

// NewFileSlot returns a slot backed by path. A positive limit caps the blob size in bytes.
func NewFileSlot(path string, limit int64) *FileSlot {
	return &FileSlot{path: path, limit: limit}
}

// Path returns the file holding the blob.
func (s *FileSlot) Path() string {
	return s.path
}

// Read returns the file contents, or ErrAbsent when the file does not exist.
func (s *FileSlot) Read(ctx context.Context) ([]byte, error) {
	if s == nil {
		return nil, errors.New("kv.FileSlot is nil")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return data, nil
}

// Write replaces the file through a synced temp file and a rename.
func (s *FileSlot) Write(ctx context.Context, data []byte) error {
	if s == nil {
		return errors.New("kv.FileSlot is nil")
	}
	if err := checkQuota(s.limit, data); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "vibe-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), s.path)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot keeps the profile in <dir>/<key>.json.
type FileSlot struct {
	path string
}

// NewFileSlot creates the directory if needed and returns a slot for key.
func NewFileSlot(dir, key string) (*FileSlot, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileSlot{path: filepath.Join(dir, key+".json")}, nil
}

// Path returns the backing file.
func (s *FileSlot) Path() string {
	return s.path
}

func (s *FileSlot) Describe() string {
	return "file:" + s.path
}

func (s *FileSlot) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return data, nil
}

// Write replaces the file atomically through a temporary sibling.
func (s *FileSlot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *FileSlot) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	return nil
}

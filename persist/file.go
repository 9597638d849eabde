package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores the snapshot as a single JSON file on disk.
type File struct {
	Path string
}

// NewFile returns a file-backed store at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read save: %w", err)
	}
	return data, true, nil
}

func (f *File) Save(data []byte) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

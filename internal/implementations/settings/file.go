package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	c "waterreminder/internal/core/domain/common"
	"waterreminder/internal/core/domain/reminder"
)

const FileName = "settings.json"

// File keeps the interval in a JSON file.
type File struct {
	path string
}

func NewFile(path string) *File {
	if path == "" {
		panic("settings file path must not be empty")
	}
	return &File{path: path}
}

// DefaultFilePath is settings.json in the per-user config directory of the
// application.
func DefaultFilePath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, FileName), nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Load(ctx context.Context) (c.Optional[reminder.Interval], error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return c.None[reminder.Interval](), nil
	}
	if err != nil {
		return c.None[reminder.Interval](), err
	}
	interval, err := decodeInterval(data)
	if err != nil {
		return c.None[reminder.Interval](), err
	}
	return c.Some(interval), nil
}

// Save replaces the file atomically through a temporary file in the same
// directory.
func (f *File) Save(ctx context.Context, interval reminder.Interval) error {
	data, err := encodeInterval(interval)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("could not replace settings file: %w", err)
	}
	return nil
}

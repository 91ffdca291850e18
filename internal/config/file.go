package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/sqlformat/internal/options"
)

// Path returns the configuration file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// LoadFile reads and parses one configuration file. Parse errors are
// prefixed with the path.
func LoadFile(path string) (options.Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return options.Overlay{}, fmt.Errorf("reading config file: %w", err)
	}
	o, err := options.Parse(string(data))
	if err != nil {
		return options.Overlay{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// LoadDir reads dir's configuration file. A missing file yields an empty
// overlay and nil error.
func LoadDir(dir string) (options.Overlay, error) {
	o, err := LoadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return options.Overlay{}, nil
	}
	return o, err
}

// Create writes a new configuration file and fails if one already exists.
func Create(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	return f.Close()
}

// Save replaces the configuration file in dir with the serialized overlay.
// Comments in an existing file are not preserved.
func Save(dir string, o options.Overlay) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(Path(dir), []byte(options.SerializeOverlay(o)), 0o644)
}

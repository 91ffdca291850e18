package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in each ancestor directory.
const FileName = ".sqlparse"

// Find returns the nearest configuration file at or above start. A file start
// is searched from its directory. found is false when no ancestor up to the
// filesystem root has one; that is not an error.
func Find(start string) (path string, found bool, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolving %s: %w", start, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", false, fmt.Errorf("locating configuration: %w", err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

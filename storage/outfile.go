package storage

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating missing parent directories. The
// write is not atomic; a failure may leave a partial file behind, which the
// workflow treats the same as a missing one.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrNoPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

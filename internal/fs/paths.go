// Package fs holds the filesystem helpers floatinput needs: the data
// directory the log lives in, and form definition files.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
)

// EnsureDirExists makes sure path is a writable directory, creating it and
// any missing parents with mode 0755.
//
// Example:
//
//	if err := fs.EnsureDirExists(cfg.VaultPath); err != nil {
//	    log.Fatalf("Failed to ensure data directory exists: %v", err)
//	}
func EnsureDirExists(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to check directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("path exists but is not a directory: %s", path)
	case info.Mode().Perm()&0200 == 0:
		return fmt.Errorf("directory is not writable: %s", path)
	}
	return nil
}

// FileExists reports whether path names a regular file. A missing path is not
// an error.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

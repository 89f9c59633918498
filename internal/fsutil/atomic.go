// Package fsutil provides file system helpers shared by the rulecat packages.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// TempPattern is the os.CreateTemp pattern used for atomic writes.
// Files matching it are never picked up as fragments.
const TempPattern = ".rulecat-*.tmp"

// DefaultFileMode is applied to newly created files.
const DefaultFileMode fs.FileMode = 0o644

// IsTempFile reports whether name looks like a leftover of WriteFileAtomic.
func IsTempFile(name string) bool {
	return strings.HasPrefix(name, ".rulecat-") && strings.HasSuffix(name, ".tmp")
}

// WriteFileAtomic writes data to path using a temp file in the same
// directory followed by os.Rename. An existing file keeps its permission
// bits; a new file gets DefaultFileMode. The temp file is removed on every
// error path and never left behind on success.
func WriteFileAtomic(path string, data []byte) (err error) {
	mode := DefaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), TempPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = multierr.Append(err, fmt.Errorf("remove temp file: %w", rmErr))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("write temp file: %w", err), tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SamePath reports whether a and b name the same location after
// cleaning and making both absolute. It does not resolve symlinks.
func SamePath(a, b string) bool {
	return absClean(a) == absClean(b)
}

func absClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

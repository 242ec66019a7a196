package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// Exists checks if a file or directory exists at the given path.
// Symlinks are not followed, so a dangling link still exists.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

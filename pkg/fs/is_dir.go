package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// IsDir checks if the path is a directory. A missing path is not a directory.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

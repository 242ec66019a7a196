package fs

import (
	"errors"
	"io"
	"os"
)

// IsDirEmpty checks if the directory at path has no entries.
func (f *realFS) IsDirEmpty(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = dir.Close()
	}()

	// Reading a single name is enough to know the directory is not empty
	_, err = dir.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

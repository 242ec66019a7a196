// Package fs provides the file system operations used to materialize projects.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations over a project tree.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// IsDirEmpty checks if the directory at path has no entries.
	IsDirEmpty(path string) (bool, error)

	// Stat returns the file info of the path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath string) error

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(path string) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// Walk lists every entry below root, skipping entries (and their subtrees) named in skip.
	Walk(root string, skip ...string) ([]Entry, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)
}

// Entry is a single path found while walking a tree.
type Entry struct {
	Path    string
	Name    string
	IsDir   bool
	Regular bool
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}

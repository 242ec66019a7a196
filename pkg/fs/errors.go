// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrWalk is returned when a tree cannot be traversed.
	ErrWalk = errors.New("failed to walk directory")

	// ErrPathResolution is returned when a path cannot be expanded.
	ErrPathResolution = errors.New("path resolution failed")
)

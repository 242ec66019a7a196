package placeholder

import "errors"

// Error definitions for placeholder package.
var (
	// ErrScan is returned when the project tree cannot be scanned.
	ErrScan = errors.New("failed to scan placeholders")

	// ErrPrompt is returned when asking for a missing placeholder value fails.
	ErrPrompt = errors.New("failed to prompt for placeholder value")

	// ErrRenameDirectory is returned when a directory cannot be renamed.
	ErrRenameDirectory = errors.New("failed to rename directory")

	// ErrRenameFile is returned when a file cannot be renamed.
	ErrRenameFile = errors.New("failed to rename file")

	// ErrReadFile is returned when a file cannot be read for substitution.
	ErrReadFile = errors.New("failed to read file")

	// ErrWriteFile is returned when substituted content cannot be written back.
	ErrWriteFile = errors.New("failed to write file")
)

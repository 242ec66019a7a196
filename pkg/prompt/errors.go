// Package prompt provides interactive prompt functionality for new.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	// ErrReadInput is returned when the answer cannot be read.
	ErrReadInput = errors.New("failed to read user input")

	// ErrEmptyProjectName is returned when the user enters no project name.
	ErrEmptyProjectName = errors.New("project name cannot be empty")
)

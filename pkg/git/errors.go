// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCloneFailed        = errors.New("failed to clone template repository")
	ErrInvalidRepository  = errors.New("repository must be a local path, a URL or in the form owner/repo")
	ErrRepositoryNotFound = errors.New("repository reference is empty")
)

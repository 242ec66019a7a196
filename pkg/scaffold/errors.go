package scaffold

import "errors"

// Error definitions for scaffold package.
var (
	// ErrMissingRecipe is returned when no recipe name is given.
	ErrMissingRecipe = errors.New("missing template recipe, use `new list` to see available templates")

	// ErrMissingDirectory is returned when no project directory could be obtained.
	ErrMissingDirectory = errors.New("missing project directory")

	// ErrDirectoryNotEmpty is returned when the project directory already has content.
	ErrDirectoryNotEmpty = errors.New("project directory already exists and is not empty")

	// ErrPathNotDirectory is returned when the project path is an existing file.
	ErrPathNotDirectory = errors.New("project path already exists and is not a directory")

	// ErrInvalidProjectDirectory is returned when no project name can be derived from the directory.
	ErrInvalidProjectDirectory = errors.New("invalid project directory")

	// ErrEditorLaunch is returned when the editor cannot be started.
	ErrEditorLaunch = errors.New("failed to launch editor")

	// ErrEditorFailed is returned when the editor exits unsuccessfully.
	ErrEditorFailed = errors.New("editor exited with a non-zero status")
)

package scaffold

import (
	"fmt"
	"path/filepath"
)

// Init finds a recipe by name and materializes it into a new project directory.
func (s *realScaffolder) Init(params InitParams) error {
	if params.Recipe == "" {
		return ErrMissingRecipe
	}

	r, err := s.deps.Recipes.Find(params.Recipe)
	if err != nil {
		return err
	}

	dir, err := s.resolveDirectory(params.Directory)
	if err != nil {
		return err
	}

	if err := s.ensureDirectoryAvailable(dir); err != nil {
		return err
	}

	name := filepath.Base(dir)
	if name == string(filepath.Separator) || name == "." || name == "" {
		return fmt.Errorf("%w: %s", ErrInvalidProjectDirectory, dir)
	}

	return s.Materialize(MaterializeParams{
		Recipe:      r,
		ProjectDir:  dir,
		ProjectName: name,
	})
}

// resolveDirectory asks for the directory when none is given and makes it absolute.
func (s *realScaffolder) resolveDirectory(dir string) (string, error) {
	if dir == "" {
		answer, err := s.deps.Prompt.PromptForProjectName()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMissingDirectory, err)
		}
		dir = answer
	}

	expanded, err := s.deps.FS.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidProjectDirectory, err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidProjectDirectory, err)
	}

	return abs, nil
}

// ensureDirectoryAvailable accepts a missing path or an empty directory.
// The parent of a missing path is created.
func (s *realScaffolder) ensureDirectoryAvailable(dir string) error {
	isDir, err := s.deps.FS.IsDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProjectDirectory, err)
	}

	if isDir {
		empty, err := s.deps.FS.IsDirEmpty(dir)
		if err != nil {
			return fmt.Errorf("failed to read project directory %s: %w", dir, err)
		}
		if !empty {
			return fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, dir)
		}
		return nil
	}

	exists, err := s.deps.FS.Exists(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProjectDirectory, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrPathNotDirectory, dir)
	}

	parent := filepath.Dir(dir)
	if err := s.deps.FS.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory %s: %w", parent, err)
	}

	return nil
}

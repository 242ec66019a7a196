package scaffold

import (
	"fmt"
)

// EditRecipes opens the recipes directory in editor, or the configured one when empty.
func (s *realScaffolder) EditRecipes(editor string) error {
	if editor == "" {
		cfg, err := s.deps.Config.GetConfigWithFallback()
		if err != nil {
			return err
		}
		editor = cfg.Editor
	}

	dir := s.deps.Recipes.Dir()
	if err := s.deps.FS.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create recipes directory %s: %w", dir, err)
	}

	s.deps.Logger.Debugf("Opening %s with %s", dir, editor)
	status, err := s.deps.Shell.Exec("", editor, dir)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrEditorLaunch, editor, err)
	}
	if !status.Success() {
		return fmt.Errorf("%w: %s", ErrEditorFailed, editor)
	}

	return nil
}

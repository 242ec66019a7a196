// Package removegit provides the hook deleting the template's Git metadata.
package removegit

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/new/pkg/fs"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
)

// Name is the name of the hook.
const Name = "Remove .git directory from template"

// Hook removes the .git directory of the freshly cloned project.
type Hook struct {
	fs     fs.FS
	logger logger.Logger
}

// NewHook creates a new Hook instance.
func NewHook(fs fs.FS, logger logger.Logger) *Hook {
	return &Hook{
		fs:     fs,
		logger: logger,
	}
}

// RegisterFor registers this hook with register.
func (h *Hook) RegisterFor(register func(hooks.Hook) error) error {
	return register(hooks.Hook{
		Name:   Name,
		Stages: []hooks.Stage{hooks.StagePostClone},
		Run:    h.Run,
	})
}

// Run deletes <project>/.git when it is a directory. Anything else is left alone.
func (h *Hook) Run(ctx *hooks.Context) error {
	gitDir := filepath.Join(ctx.ProjectDir, ".git")

	isDir, err := h.fs.IsDir(gitDir)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrRemoveGitDir, gitDir, err)
	}
	if !isDir {
		return nil
	}

	h.logger.Debugf("Removing %s", gitDir)
	if err := h.fs.RemoveAll(gitDir); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRemoveGitDir, gitDir, err)
	}

	return nil
}

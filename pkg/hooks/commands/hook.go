// Package commands provides the hook running the recipe's post-clone commands.
package commands

import (
	"fmt"

	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
	"github.com/lerenn/new/pkg/recipe"
	"github.com/lerenn/new/pkg/shell"
)

const (
	// Name is the name of the hook.
	Name = "Run Commands"

	// ConfigKey is the recipe key holding the list of commands.
	ConfigKey = "commands"
)

// Hook runs each configured command through the shell in the project directory.
type Hook struct {
	shell  shell.Shell
	logger logger.Logger
}

// NewHook creates a new Hook instance.
func NewHook(shell shell.Shell, logger logger.Logger) *Hook {
	return &Hook{
		shell:  shell,
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

// Run executes the commands in order and stops at the first one that does not succeed.
func (h *Hook) Run(ctx *hooks.Context) error {
	commands, ok, err := recipe.Lookup[[]string](ctx.Recipe, ConfigKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for _, command := range commands {
		h.logger.Logf("Running `%s`", command)

		status, err := h.shell.Run(ctx.ProjectDir, command)
		if err != nil {
			return fmt.Errorf("%w `%s`: %w", ErrRunCommand, command, err)
		}
		if !status.Success() {
			return &CommandError{Command: command, Status: status}
		}
	}

	return nil
}

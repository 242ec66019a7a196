// Package defaulthooks provides the default hook pipeline used to materialize a recipe.
package defaulthooks

import (
	"github.com/lerenn/new/pkg/fs"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/hooks/commands"
	"github.com/lerenn/new/pkg/hooks/placeholders"
	"github.com/lerenn/new/pkg/hooks/removegit"
	"github.com/lerenn/new/pkg/logger"
	"github.com/lerenn/new/pkg/prompt"
	"github.com/lerenn/new/pkg/shell"
)

// NewDefaultRegistryParams contains parameters for NewDefaultRegistry.
type NewDefaultRegistryParams struct {
	FS     fs.FS
	Prompt prompt.Prompter
	Shell  shell.Shell
	Logger logger.Logger
}

// NewDefaultRegistry creates a registry running, after the clone, the .git
// removal, the placeholder substitution and the recipe commands, in that order.
func NewDefaultRegistry(params NewDefaultRegistryParams) (hooks.Registry, error) {
	registry := hooks.NewRegistry(params.Logger)

	if err := removegit.NewHook(params.FS, params.Logger).RegisterFor(registry.Register); err != nil {
		return nil, err
	}

	if err := placeholders.NewHook(params.FS, params.Prompt, params.Logger).RegisterFor(registry.Register); err != nil {
		return nil, err
	}

	if err := commands.NewHook(params.Shell, params.Logger).RegisterFor(registry.Register); err != nil {
		return nil, err
	}

	return registry, nil
}

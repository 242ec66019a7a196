// Package placeholders provides the hook substituting {{KEY}} tokens in the cloned project.
package placeholders

import (
	"github.com/lerenn/new/pkg/fs"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
	"github.com/lerenn/new/pkg/placeholder"
	"github.com/lerenn/new/pkg/prompt"
	"github.com/lerenn/new/pkg/recipe"
)

const (
	// Name is the name of the hook.
	Name = "Replace Placeholders"

	// ConfigKey is the recipe key holding the key to value replacements.
	ConfigKey = "replacements"
)

// Hook resolves the placeholder values and rewrites the project tree with them.
type Hook struct {
	fs       fs.FS
	prompt   prompt.Prompter
	logger   logger.Logger
	resolver placeholder.Resolver
}

// NewHook creates a new Hook instance.
func NewHook(fs fs.FS, prompt prompt.Prompter, logger logger.Logger) *Hook {
	return &Hook{
		fs:       fs,
		prompt:   prompt,
		logger:   logger,
		resolver: placeholder.NewResolver(placeholder.NewScanner(fs)),
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

// Run substitutes the configured replacements, NAME and the prompted values.
func (h *Hook) Run(ctx *hooks.Context) error {
	explicit, _, err := recipe.Lookup[map[string]string](ctx.Recipe, ConfigKey)
	if err != nil {
		return err
	}

	replacements, err := h.resolver.Resolve(placeholder.ResolveParams{
		Root:        ctx.ProjectDir,
		Explicit:    explicit,
		ProjectName: ctx.ProjectName,
		Ask:         h.prompt.PromptForPlaceholder,
	})
	if err != nil {
		return err
	}

	h.logger.Debugf("Replacing %d placeholders in %s", len(replacements), ctx.ProjectDir)
	return placeholder.NewReplacer(h.fs, replacements).Apply(ctx.ProjectDir)
}

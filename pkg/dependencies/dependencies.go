// Package dependencies provides a centralized dependency container for the new application.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/new/pkg/config"
	"github.com/lerenn/new/pkg/fs"
	"github.com/lerenn/new/pkg/git"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
	"github.com/lerenn/new/pkg/prompt"
	"github.com/lerenn/new/pkg/recipe"
	"github.com/lerenn/new/pkg/shell"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing      = errors.New("fs dependency is required but not set")
	ErrGitMissing     = errors.New("git dependency is required but not set")
	ErrShellMissing   = errors.New("shell dependency is required but not set")
	ErrConfigMissing  = errors.New("config dependency is required but not set")
	ErrRecipesMissing = errors.New("recipes dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
	ErrPromptMissing  = errors.New("prompt dependency is required but not set")
	ErrHooksMissing   = errors.New("hooks dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS      fs.FS
	Git     git.Git
	Shell   shell.Shell
	Config  config.Manager
	Recipes recipe.Manager
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Hooks   hooks.Registry
}

// New creates a new Dependencies instance with sensible defaults.
// Config, Recipes and Hooks depend on runtime settings and are left nil.
func New() *Dependencies {
	fsInstance := fs.NewFS()

	return &Dependencies{
		FS:     fsInstance,
		Git:    git.NewGit(fsInstance),
		Shell:  shell.NewShell(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithShell sets the shell and returns the instance for chaining.
func (d *Dependencies) WithShell(shell shell.Shell) *Dependencies {
	d.Shell = shell
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithRecipes sets the recipe manager and returns the instance for chaining.
func (d *Dependencies) WithRecipes(recipes recipe.Manager) *Dependencies {
	d.Recipes = recipes
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHooks sets the hook registry and returns the instance for chaining.
func (d *Dependencies) WithHooks(registry hooks.Registry) *Dependencies {
	d.Hooks = registry
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Shell, ErrShellMissing},
		{d.Config, ErrConfigMissing},
		{d.Recipes, ErrRecipesMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Hooks, ErrHooksMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}

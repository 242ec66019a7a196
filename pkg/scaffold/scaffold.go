// Package scaffold creates projects from recipes.
package scaffold

import (
	"io"

	"github.com/lerenn/new/pkg/dependencies"
	defaulthooks "github.com/lerenn/new/pkg/hooks/default"
	"github.com/lerenn/new/pkg/recipe"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=scaffold.go -destination=mocks/scaffold.gen.go -package=mocks

// Scaffolder interface provides the project creation operations.
type Scaffolder interface {
	// Init finds a recipe by name and materializes it into a new project directory.
	Init(params InitParams) error

	// Materialize clones the recipe template into the project directory and runs the hooks around it.
	Materialize(params MaterializeParams) error

	// ListRecipes writes the recipes directory and the state of every recipe file to w.
	ListRecipes(w io.Writer) error

	// EditRecipes opens the recipes directory in editor, or the configured one when empty.
	EditRecipes(editor string) error
}

// InitParams contains parameters for Init.
type InitParams struct {
	// Recipe is the name of the recipe to use.
	Recipe string
	// Directory is the project directory. The user is asked for it when empty.
	Directory string
}

// MaterializeParams contains parameters for Materialize.
type MaterializeParams struct {
	Recipe *recipe.Recipe
	// ProjectDir must be absolute.
	ProjectDir  string
	ProjectName string
}

// NewScaffolderParams contains parameters for creating a new Scaffolder instance.
type NewScaffolderParams struct {
	Dependencies *dependencies.Dependencies
}

type realScaffolder struct {
	deps *dependencies.Dependencies
}

// NewScaffolder creates a new Scaffolder instance.
// The default hook pipeline is used when the dependencies carry none.
func NewScaffolder(params NewScaffolderParams) (Scaffolder, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if deps.Hooks == nil {
		registry, err := defaulthooks.NewDefaultRegistry(defaulthooks.NewDefaultRegistryParams{
			FS:     deps.FS,
			Prompt: deps.Prompt,
			Shell:  deps.Shell,
			Logger: deps.Logger,
		})
		if err != nil {
			return nil, err
		}
		deps = deps.WithHooks(registry)
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realScaffolder{
		deps: deps,
	}, nil
}

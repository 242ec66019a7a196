package scaffold

import (
	"github.com/lerenn/new/pkg/git"
	"github.com/lerenn/new/pkg/hooks"
)

// Materialize clones the recipe template into the project directory and runs the hooks around it.
func (s *realScaffolder) Materialize(params MaterializeParams) error {
	ctx := &hooks.Context{
		Recipe:      params.Recipe,
		ProjectDir:  params.ProjectDir,
		ProjectName: params.ProjectName,
	}

	if err := s.deps.Hooks.Run(hooks.StagePreClone, ctx); err != nil {
		return err
	}

	s.deps.Logger.Logf("Cloning %s into %s", params.Recipe.Repo, params.ProjectDir)
	if err := s.deps.Git.Clone(git.CloneParams{
		Repo:       params.Recipe.Repo,
		Branch:     params.Recipe.Branch,
		TargetPath: params.ProjectDir,
	}); err != nil {
		return err
	}

	if err := s.deps.Hooks.Run(hooks.StagePostClone, ctx); err != nil {
		return err
	}

	s.deps.Logger.Logf("Created %s from recipe %s", params.ProjectName, params.Recipe.Name)
	return nil
}

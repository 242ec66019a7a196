package main

import (
	"github.com/lerenn/new/pkg/scaffold"
	"github.com/spf13/cobra"
)

func createInitCmd(provider scaffolderProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "init <recipe> [directory]",
		Short: "Create a new project from a recipe",
		Long: `Create a new project from a recipe.

The directory must not exist or be empty. When it is omitted, the project
name is asked and used as directory. The last element of the directory is
the project name, available to the template as {{NAME}}.

Examples:
  new init rust-cli my-tool
  new init rust-cli ~/dev/my-tool`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInit(provider, args)
		},
	}
}

func runInit(provider scaffolderProvider, args []string) error {
	s, err := provider()
	if err != nil {
		return err
	}

	params := scaffold.InitParams{Recipe: args[0]}
	if len(args) > 1 {
		params.Directory = args[1]
	}

	return s.Init(params)
}

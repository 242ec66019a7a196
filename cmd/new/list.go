package main

import (
	"github.com/spf13/cobra"
)

func createListCmd(provider scaffolderProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the installed recipes",
		Long: `List the recipes found in the recipes directory.

Recipes that cannot be read or parsed are shown with the reasons why.

Examples:
  new list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := provider()
			if err != nil {
				return err
			}
			return s.ListRecipes(cmd.OutOrStdout())
		},
	}
}

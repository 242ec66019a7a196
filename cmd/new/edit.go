package main

import (
	"github.com/lerenn/new/cmd/new/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func createEditCmd(v *viper.Viper, provider scaffolderProvider) (*cobra.Command, error) {
	editCmd := &cobra.Command{
		Use:   "edit [--editor <editor>]",
		Short: "Open the recipes directory in an editor",
		Long: `Open the recipes directory in an editor.

The editor defaults to the one set in the configuration file, then to code.

Examples:
  new edit
  new edit --editor vim`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := provider()
			if err != nil {
				return err
			}
			return s.EditRecipes(v.GetString(cli.EditorKey))
		},
	}

	editCmd.Flags().StringP(cli.EditorKey, "e", "", "Editor to open the recipes directory with")
	if err := v.BindPFlag(cli.EditorKey, editCmd.Flags().Lookup(cli.EditorKey)); err != nil {
		return nil, err
	}

	return editCmd, nil
}

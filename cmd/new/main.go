// Package main provides the command-line interface for the new application.
package main

import (
	"os"

	"github.com/lerenn/new/cmd/new/internal/cli"
	"github.com/lerenn/new/pkg/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scaffolderProvider builds the Scaffolder once flags are parsed.
type scaffolderProvider func() (scaffold.Scaffolder, error)

func newRootCmd(v *viper.Viper, provider scaffolderProvider) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "new <recipe> [directory]",
		Short: "Create a new project from a recipe",
		Long: `Create a new project by cloning the template of a recipe, replacing its
{{PLACEHOLDERS}} and running the recipe commands.

Running new with a recipe name is a shortcut for new init.

Examples:
  new rust-cli my-tool
  new rust-cli
  new list`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runInit(provider, args)
		},
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Add global flags
	rootCmd.PersistentFlags().StringP(cli.ConfigKey, "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().BoolP(cli.VerboseKey, "v", false, "Enable verbose output")
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return nil, err
	}

	editCmd, err := createEditCmd(v, provider)
	if err != nil {
		return nil, err
	}

	rootCmd.AddCommand(
		createInitCmd(provider),
		createListCmd(provider),
		editCmd,
	)

	return rootCmd, nil
}

func main() {
	v := cli.NewViper()

	rootCmd, err := newRootCmd(v, func() (scaffold.Scaffolder, error) {
		return cli.NewScaffolder(v)
	})
	if err == nil {
		err = rootCmd.Execute()
	}

	if err != nil {
		cli.NewLogger(v).Errorf("%v", err)
		os.Exit(1)
	}
}

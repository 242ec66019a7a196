// Package cli provides the configuration and wiring shared by the new commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/lerenn/new/pkg/config"
	"github.com/lerenn/new/pkg/dependencies"
	"github.com/lerenn/new/pkg/fs"
	"github.com/lerenn/new/pkg/logger"
	"github.com/lerenn/new/pkg/recipe"
	"github.com/lerenn/new/pkg/scaffold"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables overriding flags (NEW_CONFIG, NEW_VERBOSE, NEW_EDITOR).
	EnvPrefix = config.AppName

	// ConfigKey holds the custom config file path.
	ConfigKey = "config"
	// VerboseKey enables debug output.
	VerboseKey = "verbose"
	// EditorKey holds the editor used by the edit command.
	EditorKey = "editor"
)

// NewViper creates the viper instance the commands bind their flags to.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ConfigPath returns the config file path that would be used by NewConfigManager.
func ConfigPath(v *viper.Viper) string {
	if path := v.GetString(ConfigKey); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a config Manager reading ConfigPath.
func NewConfigManager(v *viper.Viper, fs fs.FS) config.Manager {
	return config.NewManager(fs, ConfigPath(v))
}

// NewLogger creates the logger matching the verbosity flag.
func NewLogger(v *viper.Viper) logger.Logger {
	return logger.NewDefaultLogger(v.GetBool(VerboseKey))
}

// NewScaffolder creates a Scaffolder wired to the real collaborators.
func NewScaffolder(v *viper.Viper) (scaffold.Scaffolder, error) {
	fsInstance := fs.NewFS()
	configManager := NewConfigManager(v, fsInstance)

	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return scaffold.NewScaffolder(scaffold.NewScaffolderParams{
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithConfig(configManager).
			WithRecipes(recipe.NewManager(fsInstance, cfg.RecipesDir)).
			WithLogger(NewLogger(v)),
	})
}

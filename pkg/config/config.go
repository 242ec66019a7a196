// Package config provides configuration management functionality for the new application.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name used below the user config directory.
	AppName = "new"

	// DefaultEditor opens the recipes directory when nothing else is configured.
	DefaultEditor = "code"
)

// Config represents the application configuration.
type Config struct {
	// RecipesDir holds the recipe declarations, one TOML file per recipe.
	RecipesDir string `yaml:"recipes_dir"`
	// Editor is the program used by `new edit`.
	Editor string `yaml:"editor"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/new/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultRecipesDir returns $XDG_CONFIG_HOME/new/recipes.
func DefaultRecipesDir() string {
	return filepath.Join(xdg.ConfigHome, AppName, "recipes")
}

// withDefaults fills the unset values of c from the default configuration.
func (c Config) withDefaults(defaults Config) Config {
	if c.RecipesDir == "" {
		c.RecipesDir = defaults.RecipesDir
	}
	if c.Editor == "" {
		c.Editor = defaults.Editor
	}
	return c
}

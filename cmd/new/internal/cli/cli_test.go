//go:build unit

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/new/pkg/config"
	"github.com/lerenn/new/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath_Default(t *testing.T) {
	t.Setenv("NEW_CONFIG", "")

	assert.Equal(t, config.DefaultConfigPath(), ConfigPath(NewViper()))
}

func TestConfigPath_FromEnvironment(t *testing.T) {
	t.Setenv("NEW_CONFIG", "/tmp/custom/config.yaml")

	assert.Equal(t, "/tmp/custom/config.yaml", ConfigPath(NewViper()))
}

func TestConfigPath_ExplicitValueWins(t *testing.T) {
	t.Setenv("NEW_CONFIG", "/tmp/env/config.yaml")

	v := NewViper()
	v.Set(ConfigKey, "/tmp/flag/config.yaml")

	assert.Equal(t, "/tmp/flag/config.yaml", ConfigPath(v))
}

func TestNewConfigManager_UsesConfigPath(t *testing.T) {
	v := NewViper()
	v.Set(ConfigKey, "/tmp/flag/config.yaml")

	manager := NewConfigManager(v, fs.NewFS())

	assert.Equal(t, "/tmp/flag/config.yaml", manager.GetConfigPath())
}

func TestNewScaffolder_MissingConfigFallsBack(t *testing.T) {
	v := NewViper()
	v.Set(ConfigKey, filepath.Join(t.TempDir(), "missing.yaml"))

	s, err := NewScaffolder(v)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewScaffolder_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recipes_dir: [unterminated"), 0644))

	v := NewViper()
	v.Set(ConfigKey, path)

	_, err := NewScaffolder(v)
	assert.ErrorIs(t, err, ErrFailedToLoadConfig)
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

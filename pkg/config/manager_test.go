//go:build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/new/pkg/fs"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigWithFallback_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManager(fs.NewFS(), path)

	config, err := m.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, m.DefaultConfig(), config)
	assert.Equal(t, DefaultEditor, config.Editor)
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(config.RecipesDir)))
}

func TestManager_GetConfig_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m := NewManager(fs.NewFS(), path)

	_, err := m.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Equal(t, path, m.GetConfigPath())
}

func TestManager_GetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recipes_dir: ~/recipes\neditor: vim\n"), 0644))

	m := NewManager(fs.NewFS(), path)

	config, err := m.GetConfigWithFallback()
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "recipes"), config.RecipesDir)
	assert.Equal(t, "vim", config.Editor)
}

func TestManager_GetConfig_PartialUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: nano\n"), 0644))

	m := NewManager(fs.NewFS(), path)

	config, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "nano", config.Editor)
	assert.Equal(t, DefaultRecipesDir(), config.RecipesDir)
}

func TestManager_GetConfigWithFallback_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unclosed\n"), 0644))

	m := NewManager(fs.NewFS(), path)

	_, err := m.GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

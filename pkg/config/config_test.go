//go:build unit

package config

import (
	"testing"

	"github.com/lerenn/new/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultConfig(t *testing.T) {
	var config Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigYAML, &config))

	assert.Equal(t, "", config.RecipesDir)
	assert.Equal(t, DefaultEditor, config.Editor)
}

func TestDefaultConfig(t *testing.T) {
	config := NewManager(nil, DefaultConfigPath()).DefaultConfig()

	assert.Equal(t, Config{
		RecipesDir: DefaultRecipesDir(),
		Editor:     DefaultEditor,
	}, config)
}

func TestConfig_WithDefaults(t *testing.T) {
	defaults := Config{RecipesDir: "/default/recipes", Editor: "code"}

	assert.Equal(t, defaults, Config{}.withDefaults(defaults))
	assert.Equal(t,
		Config{RecipesDir: "/mine", Editor: "code"},
		Config{RecipesDir: "/mine"}.withDefaults(defaults))
	assert.Equal(t,
		Config{RecipesDir: "/default/recipes", Editor: "vim"},
		Config{Editor: "vim"}.withDefaults(defaults))
}

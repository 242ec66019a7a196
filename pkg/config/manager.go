package config

import (
	"fmt"

	"github.com/lerenn/new/configs"
	"github.com/lerenn/new/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file, failing when it is missing.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration file, using defaults when it is missing.
	GetConfigWithFallback() (Config, error)
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
	// DefaultConfig returns the configuration used when no file exists.
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fs fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads the configuration file, failing when it is missing.
// Unset values are taken from the default configuration and tildes are expanded.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrConfigFileParse, c.configPath, err)
	}

	return c.expandTildes(config.withDefaults(c.DefaultConfig()))
}

// GetConfigWithFallback loads the configuration file, using defaults when it is missing.
// A file that exists but cannot be loaded is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return c.DefaultConfig(), nil
	}

	return c.GetConfig()
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the configuration used when no file exists.
// It is read from the embedded default configuration file.
func (c *realManager) DefaultConfig() Config {
	var config Config
	// Built-in values fill whatever the embedded file leaves unset.
	_ = yaml.Unmarshal(configs.DefaultConfigYAML, &config)

	return config.withDefaults(Config{
		RecipesDir: DefaultRecipesDir(),
		Editor:     DefaultEditor,
	})
}

func (c *realManager) expandTildes(config Config) (Config, error) {
	dir, err := c.fs.ExpandPath(config.RecipesDir)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrPathExpansion, config.RecipesDir, err)
	}
	config.RecipesDir = dir

	return config, nil
}

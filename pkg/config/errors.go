package config

import "errors"

// Error definitions for config package.
var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrConfigFileRead is returned when the config file exists but cannot be read.
	ErrConfigFileRead = errors.New("failed to read config file")
	// ErrConfigFileParse is returned when the config file is not valid YAML.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// ErrPathExpansion is returned when a configured path cannot be expanded.
	ErrPathExpansion = errors.New("failed to expand configured path")
)

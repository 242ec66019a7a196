package cli

import "errors"

// Error definitions for cli package.
var (
	// ErrFailedToLoadConfig is returned when the config file exists but cannot be used.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
)

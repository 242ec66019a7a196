package hooks

import "errors"

// Error definitions for hooks package.
var (
	// ErrHookFailed is matched by every error coming out of a hook run.
	ErrHookFailed = errors.New("hook failed")

	// ErrInvalidHook is returned when registering a hook without name or run function.
	ErrInvalidHook = errors.New("invalid hook")
)

package shell

import "errors"

// ErrStart is returned when a process cannot be spawned.
var ErrStart = errors.New("failed to start process")

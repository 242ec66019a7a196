package commands

import (
	"errors"
	"fmt"

	"github.com/lerenn/new/pkg/shell"
)

// Error definitions for commands package.
var (
	// ErrRunCommand is returned when a command cannot be started.
	ErrRunCommand = errors.New("Failed to run command")

	// ErrCommandFailed is matched by every CommandError.
	ErrCommandFailed = errors.New("command failed")
)

// CommandError is returned when a command exits unsuccessfully.
type CommandError struct {
	Command string
	Status  shell.ExitStatus
}

// Error describes how the command ended.
func (e *CommandError) Error() string {
	if e.Status.Signaled {
		return fmt.Sprintf("Command `%s` terminated by signal", e.Command)
	}
	return fmt.Sprintf("Command `%s` failed with exit code %d", e.Command, e.Status.Code)
}

// Is makes CommandError match ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

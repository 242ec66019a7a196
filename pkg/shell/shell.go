// Package shell runs commands through the platform shell.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=shell.go -destination=mocks/shell.gen.go -package=mocks

// ExitStatus describes how a finished process ended.
type ExitStatus struct {
	// Code is the exit code, only meaningful when Signaled is false.
	Code int
	// Signaled is true when the process was terminated by a signal.
	Signaled bool
}

// Success reports whether the process exited with code 0.
func (s ExitStatus) Success() bool {
	return !s.Signaled && s.Code == 0
}

// Shell interface provides command execution.
type Shell interface {
	// Run executes command through the platform shell in dir with inherited stdio.
	// A non-nil error means the process could not be started.
	Run(dir, command string) (ExitStatus, error)

	// Exec executes the program name with args in dir with inherited stdio.
	Exec(dir, name string, args ...string) (ExitStatus, error)
}

type realShell struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewShell creates a new Shell bound to the process standard streams.
func NewShell() Shell {
	return &realShell{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes command through the platform shell in dir.
func (s *realShell) Run(dir, command string) (ExitStatus, error) {
	name, args := shellCommand(command)
	return s.Exec(dir, name, args...)
}

// Exec executes the program name with args in dir.
func (s *realShell) Exec(dir, name string, args ...string) (ExitStatus, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return ExitStatus{}, nil
	case errors.As(err, &exitErr):
		return statusOf(exitErr.ProcessState), nil
	default:
		return ExitStatus{}, fmt.Errorf("%w: %w", ErrStart, err)
	}
}

func statusOf(state *os.ProcessState) ExitStatus {
	if !state.Exited() {
		return ExitStatus{Code: -1, Signaled: true}
	}
	return ExitStatus{Code: state.ExitCode()}
}

// Package hooks provides the staged hook pipeline run around template cloning.
package hooks

import (
	"fmt"

	"github.com/lerenn/new/pkg/recipe"
)

// Stage is a point of the materialization timeline.
type Stage int

const (
	// StagePreClone runs before the template is cloned.
	StagePreClone Stage = iota
	// StagePostClone runs once the template is in the project directory.
	StagePostClone
)

// String returns the name of the stage.
func (s Stage) String() string {
	switch s {
	case StagePreClone:
		return "pre-clone"
	case StagePostClone:
		return "post-clone"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Context provides context for hook execution. It is built for a single run.
type Context struct {
	Recipe *recipe.Recipe
	// ProjectDir is the absolute path of the project being created.
	ProjectDir string
	// ProjectName is the final path segment of ProjectDir.
	ProjectName string
}

// RunFunc is the behaviour of a hook.
type RunFunc func(ctx *Context) error

// Hook pairs a run function with its static metadata.
type Hook struct {
	Name   string
	Stages []Stage
	Run    RunFunc
}

// RunsAt reports whether the hook is scheduled at stage.
func (h Hook) RunsAt(stage Stage) bool {
	for _, s := range h.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// HookError is returned by Registry.Run when a hook fails.
type HookError struct {
	Hook string
	Err  error
}

// Error returns the failure marker followed by the cause.
func (e *HookError) Error() string {
	return fmt.Sprintf("🔴 %s FAILED: %v", e.Hook, e.Err)
}

// Unwrap makes the error match both ErrHookFailed and its cause.
func (e *HookError) Unwrap() []error {
	return []error{ErrHookFailed, e.Err}
}

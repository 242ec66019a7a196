package hooks

import (
	"fmt"
	"sync"

	"github.com/lerenn/new/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=registry.go -destination=mocks/registry.gen.go -package=mocks

// Registry runs hooks in the order they were registered.
type Registry interface {
	// Register appends a hook to the pipeline.
	Register(hook Hook) error

	// Hooks returns the registered hooks in execution order.
	Hooks() []Hook

	// Run executes, one after the other, every hook scheduled at stage.
	// The first failure stops the run and is returned as a *HookError.
	Run(stage Stage, ctx *Context) error
}

type realRegistry struct {
	hooks  []Hook
	logger logger.Logger
	mu     sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger logger.Logger) Registry {
	return &realRegistry{
		logger: logger,
	}
}

// Register appends a hook to the pipeline.
func (r *realRegistry) Register(hook Hook) error {
	if hook.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidHook)
	}
	if hook.Run == nil {
		return fmt.Errorf("%w: hook %s has no run function", ErrInvalidHook, hook.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.hooks = append(r.hooks, hook)
	return nil
}

// Hooks returns the registered hooks in execution order.
func (r *realRegistry) Hooks() []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Hook(nil), r.hooks...)
}

// Run executes, one after the other, every hook scheduled at stage.
func (r *realRegistry) Run(stage Stage, ctx *Context) error {
	for _, hook := range r.Hooks() {
		if !hook.RunsAt(stage) {
			continue
		}

		r.logger.Debugf("Running %s hook: %s", stage, hook.Name)
		if err := hook.Run(ctx); err != nil {
			return &HookError{Hook: hook.Name, Err: err}
		}
	}

	return nil
}

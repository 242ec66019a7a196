//go:build unit

package hooks

import (
	"errors"
	"testing"

	"github.com/lerenn/new/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingHook(name string, calls *[]string, err error, stages ...Stage) Hook {
	return Hook{
		Name:   name,
		Stages: stages,
		Run: func(_ *Context) error {
			*calls = append(*calls, name)
			return err
		},
	}
}

func TestRegistry_RunsInRegistrationOrderFilteredByStage(t *testing.T) {
	r := NewRegistry(logger.NewNoopLogger())
	var calls []string

	require.NoError(t, r.Register(recordingHook("first", &calls, nil, StagePostClone)))
	require.NoError(t, r.Register(recordingHook("pre", &calls, nil, StagePreClone)))
	require.NoError(t, r.Register(recordingHook("both", &calls, nil, StagePreClone, StagePostClone)))
	require.NoError(t, r.Register(recordingHook("last", &calls, nil, StagePostClone)))

	require.NoError(t, r.Run(StagePreClone, &Context{}))
	assert.Equal(t, []string{"pre", "both"}, calls)

	calls = nil
	require.NoError(t, r.Run(StagePostClone, &Context{}))
	assert.Equal(t, []string{"first", "both", "last"}, calls)
}

func TestRegistry_FailureStopsTheRun(t *testing.T) {
	r := NewRegistry(logger.NewNoopLogger())
	var calls []string
	cause := errors.New("exit code 1")

	require.NoError(t, r.Register(recordingHook("ok", &calls, nil, StagePostClone)))
	require.NoError(t, r.Register(recordingHook("Run Commands", &calls, cause, StagePostClone)))
	require.NoError(t, r.Register(recordingHook("never", &calls, nil, StagePostClone)))

	err := r.Run(StagePostClone, &Context{})
	assert.ErrorIs(t, err, ErrHookFailed)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "🔴 Run Commands FAILED: exit code 1")
	assert.Equal(t, []string{"ok", "Run Commands"}, calls)

	var hookErr *HookError
	require.ErrorAs(t, err, &hookErr)
	assert.Equal(t, "Run Commands", hookErr.Hook)
}

func TestRegistry_PassesContext(t *testing.T) {
	r := NewRegistry(logger.NewNoopLogger())
	ctx := &Context{ProjectDir: "/tmp/demo", ProjectName: "demo"}

	var seen *Context
	require.NoError(t, r.Register(Hook{
		Name:   "capture",
		Stages: []Stage{StagePostClone},
		Run: func(c *Context) error {
			seen = c
			return nil
		},
	}))

	require.NoError(t, r.Run(StagePostClone, ctx))
	assert.Same(t, ctx, seen)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry(logger.NewNoopLogger())

	err := r.Register(Hook{Run: func(*Context) error { return nil }})
	assert.ErrorIs(t, err, ErrInvalidHook)

	err = r.Register(Hook{Name: "no run"})
	assert.ErrorIs(t, err, ErrInvalidHook)

	assert.Empty(t, r.Hooks())
}

func TestRegistry_EmptyRun(t *testing.T) {
	r := NewRegistry(logger.NewNoopLogger())
	assert.NoError(t, r.Run(StagePreClone, &Context{}))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "pre-clone", StagePreClone.String())
	assert.Equal(t, "post-clone", StagePostClone.String())
	assert.Equal(t, "stage(7)", Stage(7).String())
}

//go:build unit

package dependencies

import (
	"testing"

	configmocks "github.com/lerenn/new/pkg/config/mocks"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
	recipemocks "github.com/lerenn/new/pkg/recipe/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Shell)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.Recipes)
	assert.Nil(t, deps.Hooks)

	// Defaults alone are not enough
	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestDependencies_FluentSetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := configmocks.NewMockManager(ctrl)
	recipes := recipemocks.NewMockManager(ctrl)
	registry := hooks.NewRegistry(logger.NewNoopLogger())

	deps := New().
		WithConfig(cfg).
		WithRecipes(recipes).
		WithHooks(registry).
		WithLogger(logger.NewNoopLogger())

	assert.Same(t, cfg, deps.Config)
	assert.Same(t, recipes, deps.Recipes)
	require.NoError(t, deps.Validate())
}

func TestDependencies_Validate_MissingFS(t *testing.T) {
	deps := New()
	deps.FS = nil

	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}

func TestDependencies_Validate_MissingShell(t *testing.T) {
	deps := New()
	deps.Shell = nil

	assert.ErrorIs(t, deps.Validate(), ErrShellMissing)
}

func TestDependencies_Validate_MissingHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := New().
		WithConfig(configmocks.NewMockManager(ctrl)).
		WithRecipes(recipemocks.NewMockManager(ctrl))

	assert.ErrorIs(t, deps.Validate(), ErrHooksMissing)
}

func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	// The first missing dependency is reported
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}

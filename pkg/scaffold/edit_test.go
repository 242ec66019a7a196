//go:build unit

package scaffold

import (
	"errors"
	"os"
	"testing"

	"github.com/lerenn/new/pkg/config"
	"github.com/lerenn/new/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestEditRecipes_ExplicitEditor(t *testing.T) {
	s, m := newTestScaffolder(t)

	m.recipes.EXPECT().Dir().Return("/r")
	m.fs.EXPECT().MkdirAll("/r", os.FileMode(0755)).Return(nil)
	m.shell.EXPECT().Exec("", "vim", "/r").Return(shell.ExitStatus{}, nil)

	assert.NoError(t, s.EditRecipes("vim"))
}

func TestEditRecipes_ConfiguredEditor(t *testing.T) {
	s, m := newTestScaffolder(t)

	m.config.EXPECT().GetConfigWithFallback().Return(config.Config{Editor: "code"}, nil)
	m.recipes.EXPECT().Dir().Return("/r")
	m.fs.EXPECT().MkdirAll("/r", os.FileMode(0755)).Return(nil)
	m.shell.EXPECT().Exec("", "code", "/r").Return(shell.ExitStatus{}, nil)

	assert.NoError(t, s.EditRecipes(""))
}

func TestEditRecipes_NonZeroExit(t *testing.T) {
	s, m := newTestScaffolder(t)

	m.recipes.EXPECT().Dir().Return("/r")
	m.fs.EXPECT().MkdirAll("/r", os.FileMode(0755)).Return(nil)
	m.shell.EXPECT().Exec("", "vim", "/r").Return(shell.ExitStatus{Code: 2}, nil)

	assert.ErrorIs(t, s.EditRecipes("vim"), ErrEditorFailed)
}

func TestEditRecipes_LaunchError(t *testing.T) {
	s, m := newTestScaffolder(t)

	m.recipes.EXPECT().Dir().Return("/r")
	m.fs.EXPECT().MkdirAll("/r", os.FileMode(0755)).Return(nil)
	m.shell.EXPECT().Exec("", "nope", "/r").Return(shell.ExitStatus{}, errors.New("executable file not found"))

	assert.ErrorIs(t, s.EditRecipes("nope"), ErrEditorLaunch)
}

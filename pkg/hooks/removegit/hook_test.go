//go:build unit

package removegit

import (
	"errors"
	"testing"

	fsmocks "github.com/lerenn/new/pkg/fs/mocks"
	"github.com/lerenn/new/pkg/hooks"
	"github.com/lerenn/new/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHook_RegisterFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hook := NewHook(fsmocks.NewMockFS(ctrl), logger.NewNoopLogger())

	var registered []hooks.Hook
	err := hook.RegisterFor(func(h hooks.Hook) error {
		registered = append(registered, h)
		return nil
	})
	assert.NoError(t, err)
	assert.Len(t, registered, 1)
	assert.Equal(t, "Remove .git directory from template", registered[0].Name)
	assert.Equal(t, []hooks.Stage{hooks.StagePostClone}, registered[0].Stages)
}

func TestHook_Run(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(fs *fsmocks.MockFS)
		expectedErr error
	}{
		{
			name: "git directory is removed",
			setupMocks: func(fs *fsmocks.MockFS) {
				fs.EXPECT().IsDir("/work/demo/.git").Return(true, nil)
				fs.EXPECT().RemoveAll("/work/demo/.git").Return(nil)
			},
		},
		{
			name: "absent git directory is fine",
			setupMocks: func(fs *fsmocks.MockFS) {
				fs.EXPECT().IsDir("/work/demo/.git").Return(false, nil)
			},
		},
		{
			name: "stat error",
			setupMocks: func(fs *fsmocks.MockFS) {
				fs.EXPECT().IsDir("/work/demo/.git").Return(false, errors.New("permission denied"))
			},
			expectedErr: ErrRemoveGitDir,
		},
		{
			name: "remove error",
			setupMocks: func(fs *fsmocks.MockFS) {
				fs.EXPECT().IsDir("/work/demo/.git").Return(true, nil)
				fs.EXPECT().RemoveAll("/work/demo/.git").Return(errors.New("device busy"))
			},
			expectedErr: ErrRemoveGitDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := fsmocks.NewMockFS(ctrl)
			tt.setupMocks(mockFS)

			hook := NewHook(mockFS, logger.NewNoopLogger())
			err := hook.Run(&hooks.Context{ProjectDir: "/work/demo", ProjectName: "demo"})
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorContains(t, err, "/work/demo/.git")
				return
			}
			assert.NoError(t, err)
		})
	}
}

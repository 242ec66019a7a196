//go:build unit

package recipe

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lerenn/new/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDirEntry struct{ name string }

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return false }
func (e fakeDirEntry) Type() os.FileMode          { return 0 }
func (e fakeDirEntry) Info() (os.FileInfo, error) { return fakeFileInfo{name: e.name}, nil }

type fakeFileInfo struct{ name string }

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return 0 }
func (i fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return false }
func (i fakeFileInfo) Sys() any           { return nil }

func TestManager_List_Unreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	m := NewManager(mockFS, "/recipes")

	mockFS.EXPECT().MkdirAll("/recipes", os.FileMode(0755)).Return(nil)
	mockFS.EXPECT().ReadDir("/recipes").Return([]os.DirEntry{fakeDirEntry{name: "locked.toml"}}, nil)
	mockFS.EXPECT().Stat("/recipes/locked.toml").Return(fakeFileInfo{name: "locked.toml"}, nil)
	mockFS.EXPECT().ReadFile("/recipes/locked.toml").Return(nil, os.ErrPermission)

	entries, err := m.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Err, ErrReadRecipe)
	assert.ErrorIs(t, entries[0].Err, os.ErrPermission)
	assert.False(t, IsInvalid(entries[0].Err))
}

func TestManager_List_DirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	m := NewManager(mockFS, "/recipes")

	mockFS.EXPECT().MkdirAll("/recipes", os.FileMode(0755)).Return(errors.New("read-only file system"))

	_, err := m.List()
	assert.ErrorIs(t, err, ErrRecipesDirectory)
}

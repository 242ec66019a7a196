//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "test.txt")

	err := fs.WriteFileAtomic(testFile, []byte("Hello, World!"), 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, World!"), content)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_PreservesRequestedMode(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	testFile := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(testFile, []byte("echo {{NAME}}"), 0755))

	err := fs.WriteFileAtomic(testFile, []byte("echo demo"), 0755)
	require.NoError(t, err)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// No temporary file left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	fs := NewFS()
	testFile := filepath.Join(t.TempDir(), "missing", "test.txt")

	err := fs.WriteFileAtomic(testFile, []byte("data"), 0644)
	assert.Error(t, err)

	exists, _ := fs.Exists(testFile)
	assert.False(t, exists)
}

func TestFS_Rename(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "{{NAME}}")
	newPath := filepath.Join(dir, "demo")
	require.NoError(t, os.Mkdir(oldPath, 0755))

	require.NoError(t, fs.Rename(oldPath, newPath))

	isDir, err := fs.IsDir(newPath)
	require.NoError(t, err)
	assert.True(t, isDir)
}

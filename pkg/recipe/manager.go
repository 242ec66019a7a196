package recipe

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lerenn/new/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Entry is the outcome of reading one file of the recipes directory.
type Entry struct {
	Path   string
	Recipe *Recipe
	// Err is a *EntryError when the file is not a usable recipe.
	Err error
}

// EntryError describes why a recipe file is not usable.
type EntryError struct {
	Path string
	// Kind is ErrReadRecipe or ErrParseRecipe.
	Kind   error
	Causes []error
}

// Error returns the kind, the path and the causes.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, errors.Join(e.Causes...))
}

// Unwrap makes the error match its kind and its causes.
func (e *EntryError) Unwrap() []error {
	return append([]error{e.Kind}, e.Causes...)
}

// Manager gives access to the recipes stored in a directory.
type Manager interface {
	// Dir returns the recipes directory.
	Dir() string

	// Load reads every recipe, failing on the first unusable file.
	Load() ([]Recipe, error)

	// Find returns the recipe with the given name.
	Find(name string) (*Recipe, error)

	// List reads every recipe file, keeping per-file failures in the entries.
	List() ([]Entry, error)
}

type realManager struct {
	fs  fs.FS
	dir string
}

// NewManager creates a recipe Manager over dir.
func NewManager(fs fs.FS, dir string) Manager {
	return &realManager{
		fs:  fs,
		dir: dir,
	}
}

// Dir returns the recipes directory.
func (m *realManager) Dir() string {
	return m.dir
}

// Load reads every recipe, failing on the first unusable file.
func (m *realManager) Load() ([]Recipe, error) {
	entries, err := m.List()
	if err != nil {
		return nil, err
	}

	recipes := make([]Recipe, 0, len(entries))
	for _, e := range entries {
		if e.Err != nil {
			return nil, e.Err
		}
		recipes = append(recipes, *e.Recipe)
	}

	return recipes, nil
}

// Find returns the recipe with the given name.
func (m *realManager) Find(name string) (*Recipe, error) {
	recipes, err := m.Load()
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		if recipes[i].Name == name {
			return &recipes[i], nil
		}
	}

	return nil, fmt.Errorf("%w: recipe %s not found, make sure you have a recipe named %s in %s",
		ErrRecipeNotFound, name, name, m.dir)
}

// List reads every recipe file, keeping per-file failures in the entries.
// The recipes directory is created when missing. Entries are sorted by path.
func (m *realManager) List() ([]Entry, error) {
	paths, err := m.files()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		r, err := m.read(path)
		entries = append(entries, Entry{Path: path, Recipe: r, Err: err})
	}

	return entries, nil
}

func (m *realManager) files() ([]string, error) {
	if err := m.fs.MkdirAll(m.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRecipesDirectory, m.dir, err)
	}

	dirEntries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRecipesDirectory, m.dir, err)
	}

	var paths []string
	for _, de := range dirEntries {
		path := filepath.Join(m.dir, de.Name())

		// Follow symlinks, only regular files are recipes
		info, err := m.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths, nil
}

func (m *realManager) read(path string) (*Recipe, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, &EntryError{Path: path, Kind: ErrReadRecipe, Causes: []error{err}}
	}

	r, errs := parse(data)
	if len(errs) > 0 {
		return nil, &EntryError{Path: path, Kind: ErrParseRecipe, Causes: errs}
	}

	return r, nil
}

// IsInvalid reports whether err comes from a recipe file that could be read but not parsed.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrParseRecipe)
}

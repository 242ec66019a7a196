package placeholder

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/lerenn/new/pkg/fs"
)

// Replacer substitutes placeholder tokens with their values.
//
// All tokens are matched by one compiled alternation, so a value containing
// another token is never substituted a second time.
type Replacer interface {
	// Apply renames directories (deepest first), then files, then rewrites
	// text file contents below root. Each pass walks the tree again.
	// Nothing is rolled back on failure, re-running Apply is safe.
	Apply(root string) error

	// ReplaceString substitutes the tokens of s.
	ReplaceString(s string) string

	// ReplaceBytes substitutes the tokens of b and reports whether anything changed.
	ReplaceBytes(b []byte) ([]byte, bool)
}

type realReplacer struct {
	fs      fs.FS
	matcher *regexp.Regexp
	values  map[string][]byte
}

// NewReplacer creates a Replacer for the given key to value map.
// An empty map gives a replacer that never changes anything.
func NewReplacer(fs fs.FS, replacements map[string]string) Replacer {
	r := &realReplacer{
		fs:     fs,
		values: make(map[string][]byte, len(replacements)),
	}
	if len(replacements) == 0 {
		return r
	}

	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	literals := make([]string, 0, len(keys))
	for _, key := range keys {
		token := Token(key)
		literals = append(literals, regexp.QuoteMeta(token))
		r.values[token] = []byte(replacements[key])
	}
	r.matcher = regexp.MustCompile(strings.Join(literals, "|"))

	return r
}

// ReplaceString substitutes the tokens of s.
func (r *realReplacer) ReplaceString(s string) string {
	replaced, changed := r.ReplaceBytes([]byte(s))
	if !changed {
		return s
	}
	return string(replaced)
}

// ReplaceBytes substitutes the tokens of b and reports whether anything changed.
func (r *realReplacer) ReplaceBytes(b []byte) ([]byte, bool) {
	if r.matcher == nil {
		return b, false
	}

	changed := false
	replaced := r.matcher.ReplaceAllFunc(b, func(match []byte) []byte {
		value, ok := r.values[string(match)]
		if !ok {
			return match
		}
		changed = true
		return value
	})

	return replaced, changed
}

// Apply rewrites the tree below root.
func (r *realReplacer) Apply(root string) error {
	if r.matcher == nil {
		return nil
	}

	if err := r.renameDirectories(root); err != nil {
		return err
	}
	if err := r.renameFiles(root); err != nil {
		return err
	}
	return r.replaceContents(root)
}

func (r *realReplacer) renameDirectories(root string) error {
	entries, err := r.fs.Walk(root, VCSDir)
	if err != nil {
		return err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir {
			dirs = append(dirs, entry.Path)
		}
	}

	// Deepest first, so renaming a directory never moves one still to be visited
	sort.SliceStable(dirs, func(i, j int) bool {
		return depth(dirs[i]) > depth(dirs[j])
	})

	for _, dir := range dirs {
		if err := r.rename(dir); err != nil {
			return fmt.Errorf("%w %s: %w", ErrRenameDirectory, dir, err)
		}
	}

	return nil
}

func (r *realReplacer) renameFiles(root string) error {
	entries, err := r.fs.Walk(root, VCSDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Regular {
			continue
		}
		if err := r.rename(entry.Path); err != nil {
			return fmt.Errorf("%w %s: %w", ErrRenameFile, entry.Path, err)
		}
	}

	return nil
}

func (r *realReplacer) replaceContents(root string) error {
	entries, err := r.fs.Walk(root, VCSDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Regular {
			continue
		}

		content, err := r.fs.ReadFile(entry.Path)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrReadFile, entry.Path, err)
		}
		if IsBinary(content) {
			continue
		}

		replaced, changed := r.ReplaceBytes(content)
		if !changed || bytes.Equal(replaced, content) {
			continue
		}

		info, err := r.fs.Stat(entry.Path)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteFile, entry.Path, err)
		}
		if err := r.fs.WriteFileAtomic(entry.Path, replaced, info.Mode().Perm()); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteFile, entry.Path, err)
		}
	}

	return nil
}

// rename substitutes the tokens of the base name of path, keeping it in its parent.
func (r *realReplacer) rename(path string) error {
	name := filepath.Base(path)
	replaced := r.ReplaceString(name)
	if replaced == name {
		return nil
	}

	return r.fs.Rename(path, filepath.Join(filepath.Dir(path), replaced))
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}

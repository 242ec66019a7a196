package fs

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
)

// Walk lists every entry below root in lexical order, skipping entries (and their subtrees) named in skip.
// The root itself is not part of the result and ignore files are not honoured.
func (f *realFS) Walk(root string, skip ...string) ([]Entry, error) {
	skipped := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipped[name] = struct{}{}
	}

	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if _, ok := skipped[d.Name()]; ok {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		entries = append(entries, Entry{
			Path:    path,
			Name:    d.Name(),
			IsDir:   d.IsDir(),
			Regular: d.Type().IsRegular(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWalk, root, err)
	}

	return entries, nil
}

package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lerenn/new/pkg/fs"
)

// tokenPattern captures the text between {{ and }}. Braces are excluded from
// the key so that nested delimiters resolve to the innermost token.
var tokenPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// Scanner finds the placeholder keys used in a project tree.
type Scanner interface {
	// Scan returns the sorted, distinct keys found in the names and text
	// contents of everything below root. The root name is not scanned.
	Scan(root string) ([]string, error)
}

type realScanner struct {
	fs fs.FS
}

// NewScanner creates a new Scanner.
func NewScanner(fs fs.FS) Scanner {
	return &realScanner{
		fs: fs,
	}
}

// Scan returns the sorted, distinct keys found below root.
func (s *realScanner) Scan(root string) ([]string, error) {
	entries, err := s.fs.Walk(root, VCSDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	keys := make(map[string]struct{})
	for _, entry := range entries {
		collectKeys(entry.Name, keys)

		if !entry.Regular {
			continue
		}

		content, err := s.fs.ReadFile(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s: %w", ErrScan, ErrReadFile, entry.Path, err)
		}
		if IsBinary(content) {
			continue
		}
		collectKeys(string(content), keys)
	}

	return sortedKeys(keys), nil
}

// Keys returns the sorted, distinct keys found in text.
func Keys(text string) []string {
	keys := make(map[string]struct{})
	collectKeys(text, keys)
	return sortedKeys(keys)
}

func collectKeys(text string, keys map[string]struct{}) {
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		key := strings.TrimSpace(match[1])
		if key == "" {
			continue
		}
		keys[key] = struct{}{}
	}
}

func sortedKeys(keys map[string]struct{}) []string {
	result := make([]string, 0, len(keys))
	for key := range keys {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

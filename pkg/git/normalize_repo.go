package git

import (
	"fmt"
	"strings"
)

const githubURLFormat = "https://github.com/%s/%s"

// NormalizeRepo turns a recipe repository reference into a clonable URL or path.
//
// An existing local path and a full URL are used as-is, an owner/repo pair
// becomes a GitHub https URL. Anything else is rejected.
func (g *realGit) NormalizeRepo(repo string) (string, error) {
	trimmed := strings.TrimSpace(repo)
	if trimmed == "" {
		return "", ErrRepositoryNotFound
	}

	exists, err := g.fs.Exists(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidRepository, trimmed, err)
	}
	if exists || isURL(trimmed) {
		return trimmed, nil
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: got %q", ErrInvalidRepository, trimmed)
	}

	return fmt.Sprintf(githubURLFormat, parts[0], parts[1]), nil
}

func isURL(repo string) bool {
	return strings.Contains(repo, "://") || strings.HasPrefix(repo, "git@")
}

func (g *realGit) isLocal(url string) (bool, error) {
	if strings.HasPrefix(url, "file://") {
		return true, nil
	}
	if isURL(url) {
		return false, nil
	}
	return g.fs.Exists(url)
}

// Package git clones template repositories.
package git

import "github.com/lerenn/new/pkg/fs"

//go:generate go run go.uber.org/mock/mockgen@latest  -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the Git operations needed to fetch templates.
type Git interface {
	// Clone clones a repository to the specified path.
	Clone(params CloneParams) error

	// NormalizeRepo turns a recipe repository reference into a clonable URL or path.
	NormalizeRepo(repo string) (string, error)
}

type realGit struct {
	fs fs.FS
}

// NewGit creates a new Git instance.
func NewGit(fs fs.FS) Git {
	return &realGit{
		fs: fs,
	}
}

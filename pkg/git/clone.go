package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Clone clones a repository to the specified path.
// Remote repositories are fetched shallowly; local ones are cloned in full.
// go-git removes the target directory again if it created it and the clone fails.
func (g *realGit) Clone(params CloneParams) error {
	url, err := g.NormalizeRepo(params.Repo)
	if err != nil {
		return err
	}

	local, err := g.isLocal(url)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrCloneFailed, url, err)
	}

	opts := &git.CloneOptions{
		URL: url,
	}
	if !local {
		opts.Depth = 1
	}
	if params.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(params.Branch)
		opts.SingleBranch = true
	}

	if _, err := git.PlainClone(params.TargetPath, false, opts); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCloneFailed, url, err)
	}

	return nil
}

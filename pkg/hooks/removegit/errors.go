package removegit

import "errors"

// ErrRemoveGitDir is returned when the .git directory cannot be inspected or removed.
var ErrRemoveGitDir = errors.New("failed to remove git directory")

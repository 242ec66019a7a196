package git

// CloneParams contains parameters for Clone.
type CloneParams struct {
	// Repo is a local path, a full URL or a GitHub owner/repo pair.
	Repo string
	// Branch is optional, the remote HEAD is used when empty.
	Branch     string
	TargetPath string
}

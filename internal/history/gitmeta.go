package history

import (
	git "github.com/go-git/go-git/v5"
)

// RepoMetadata returns (branch, commit) best-effort for the given root.
// Empty strings are returned when the root is not a git repository or
// has no commits yet.
func RepoMetadata(root string) (branch, commit string) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ""
	}
	head, err := repo.Head()
	if err != nil {
		return "", ""
	}
	if head.Name().IsBranch() {
		branch = head.Name().Short()
	}
	return branch, head.Hash().String()
}

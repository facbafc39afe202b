// Package vcs stamps analysis results with repository state.
package vcs

import (
	"github.com/go-git/go-git/v5"
)

// HeadCommit returns the HEAD commit hash of the repository containing
// path, detecting .git in parent directories. Returns "" when path is
// not inside a repository.
func HeadCommit(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ""
	}
	ref, err := repo.Head()
	if err != nil {
		return ""
	}
	return ref.Hash().String()
}

// ShortHash truncates a commit hash to the conventional 7 characters.
func ShortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

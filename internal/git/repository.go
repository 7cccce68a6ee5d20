package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// RepoStatus summarizes a clone on disk.
type RepoStatus struct {
	Branch   string // empty when HEAD is detached
	Head     string // short commit hash, empty for an unborn branch
	Clean    bool
	Modified int
}

// IsRepository returns true if path is the root of a git working tree.
func IsRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// Status opens the repository at path and reports its HEAD and worktree state.
func Status(path string) (RepoStatus, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return RepoStatus{}, fmt.Errorf("failed to open repository: %w", err)
	}

	var st RepoStatus
	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn branch
	case err != nil:
		return RepoStatus{}, fmt.Errorf("failed to get HEAD: %w", err)
	default:
		if head.Name().IsBranch() {
			st.Branch = head.Name().Short()
		}
		st.Head = head.Hash().String()[:7]
	}

	wt, err := repo.Worktree()
	if err != nil {
		return RepoStatus{}, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return RepoStatus{}, fmt.Errorf("failed to get worktree status: %w", err)
	}
	st.Clean = status.IsClean()
	for _, fs := range status {
		if fs.Worktree != gogit.Unmodified || fs.Staging != gogit.Unmodified {
			st.Modified++
		}
	}
	return st, nil
}

// Package errors provides sentinel errors and custom error types for ddfpane.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotCheckedOut indicates that commit or push ran before a writable checkout
	ErrNotCheckedOut = errors.New("branch not checked out for editing")

	// ErrEmptyCommitMessage indicates that commit was called without a message
	ErrEmptyCommitMessage = errors.New("no commit message provided")

	// ErrNoEmail indicates that a branch checkout was requested without an email
	ErrNoEmail = errors.New("no email provided")

	// ErrNoToken indicates that push was called without an access token
	ErrNoToken = errors.New("no access token provided")

	// ErrDriveNotMounted indicates that the drive root does not exist and could not be mounted
	ErrDriveNotMounted = errors.New("drive not mounted")

	// ErrInvalidBranchName indicates a branch name that is unsafe to use as a ref or directory
	ErrInvalidBranchName = errors.New("invalid branch name")
)

// InvalidBranchNameError describes why a branch name was rejected
type InvalidBranchNameError struct {
	BranchName string
	Reason     string
}

func (e *InvalidBranchNameError) Error() string {
	return fmt.Sprintf("invalid branch name %q: %s", e.BranchName, e.Reason)
}

// Is returns true if the target error is ErrInvalidBranchName
func (e *InvalidBranchNameError) Is(target error) bool {
	return target == ErrInvalidBranchName
}

// NewInvalidBranchNameError creates a new InvalidBranchNameError
func NewInvalidBranchNameError(branchName, reason string) *InvalidBranchNameError {
	return &InvalidBranchNameError{BranchName: branchName, Reason: reason}
}

// GitCommandError represents an error from a git command execution.
// Args are expected to be redacted by the caller before construction.
type GitCommandError struct {
	Command string
	Args    []string
	Dir     string
	Output  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	if e.Dir != "" {
		msg += fmt.Sprintf(" (in %s)", e.Dir)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += fmt.Sprintf("\noutput: %s", out)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, dir, output string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Dir:     dir,
		Output:  output,
		Err:     err,
	}
}

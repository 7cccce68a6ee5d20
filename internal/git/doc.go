// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Cloning the shared repository (read-only or per-branch)
//   - Staging and committing all changes in a clone
//   - Pulling, pushing and global identity configuration
//   - Inspecting a clone on disk (go-git)
//
// Commands are always run with an argument array and an explicit working
// directory. This package never changes the process working directory.
package git

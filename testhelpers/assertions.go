// Package testhelpers provides testing utilities for ddfpane, including a
// scene with a local bare remote, Git repository helpers, a recording git
// runner and custom assertions.
package testhelpers

import (
	"os"
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has the expected branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	filtered := []string{}
	for _, b := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if b = strings.TrimSpace(b); b != "" {
			filtered = append(filtered, b)
		}
	}

	sort.Strings(filtered)
	sort.Strings(expected)
	require.Equal(t, expected, filtered, "Branches do not match")
}

// ExpectCommits asserts that the newest commits on branch have the expected
// messages, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	filtered := []string{}
	for _, c := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if c = strings.TrimSpace(c); c != "" {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(filtered))
		return
	}
	require.Equal(t, expected, filtered[:len(expected)], "Commits do not match")
}

// ExpectWorkingDirUnchanged runs fn and asserts that the process working
// directory is the same afterwards.
func ExpectWorkingDirUnchanged(t *testing.T, fn func()) {
	t.Helper()

	before, err := os.Getwd()
	require.NoError(t, err)
	fn()
	after, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, before, after, "working directory changed")
}

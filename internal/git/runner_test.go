package git_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
)

func TestCommandRunner(t *testing.T) {
	t.Run("runs in the given directory without changing cwd", func(t *testing.T) {
		dir := t.TempDir()
		before, err := os.Getwd()
		require.NoError(t, err)

		runner := git.NewCommandRunner(time.Minute)
		_, err = runner.Run(context.Background(), dir, "init", "--quiet")
		require.NoError(t, err)

		require.True(t, git.IsRepository(dir))
		after, err := os.Getwd()
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("returns trimmed combined output", func(t *testing.T) {
		out, err := git.NewCommandRunner(0).Run(context.Background(), t.TempDir(), "--version")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "git version"))
		require.Equal(t, strings.TrimSpace(out), out)
	})

	t.Run("failure is a GitCommandError with output", func(t *testing.T) {
		dir := t.TempDir()
		out, err := git.NewCommandRunner(0).Run(context.Background(), dir, "rev-parse", "HEAD")
		require.Error(t, err)
		require.NotEmpty(t, out)

		var gitErr *ddferrors.GitCommandError
		require.True(t, errors.As(err, &gitErr))
		require.Equal(t, dir, gitErr.Dir)
		require.Equal(t, []string{"rev-parse", "HEAD"}, gitErr.Args)
	})

	t.Run("redacts credentials in traces and errors", func(t *testing.T) {
		var traced []string
		runner := git.NewCommandRunner(0)
		runner.Trace = func(format string, args ...interface{}) {
			traced = append(traced, fmt.Sprintf(format, args...))
		}

		_, err := runner.Run(context.Background(), t.TempDir(), "ls-remote", "https://ghp_secret@127.0.0.1:1/x.git")
		require.Error(t, err)
		require.NotContains(t, err.Error(), "ghp_secret")
		require.Len(t, traced, 1)
		require.NotContains(t, traced[0], "ghp_secret")
		require.Contains(t, traced[0], "https://***@127.0.0.1:1/x.git")
	})
}

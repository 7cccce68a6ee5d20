package drive

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
)

func stubCommand(t *testing.T, fn func(name string, args ...string) *exec.Cmd) {
	t.Helper()
	CommandContext = func(_ context.Context, name string, args ...string) *exec.Cmd {
		return fn(name, args...)
	}
	t.Cleanup(func() { CommandContext = exec.CommandContext })
}

func TestEnsureMounted(t *testing.T) {
	t.Run("existing root is a no-op", func(t *testing.T) {
		called := false
		stubCommand(t, func(string, ...string) *exec.Cmd {
			called = true
			return exec.Command("true")
		})

		m := NewCommandMounter("mount-drive")
		require.NoError(t, m.EnsureMounted(context.Background(), t.TempDir()))
		require.False(t, called)
	})

	t.Run("missing root without command", func(t *testing.T) {
		m := NewCommandMounter("")
		err := m.EnsureMounted(context.Background(), filepath.Join(t.TempDir(), "gdrive"))
		require.ErrorIs(t, err, ddferrors.ErrDriveNotMounted)
	})

	t.Run("runs the command as argv and checks the root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "gdrive")
		var got []string
		stubCommand(t, func(name string, args ...string) *exec.Cmd {
			got = append([]string{name}, args...)
			return exec.Command("mkdir", "-p", root)
		})

		var logged []string
		m := NewCommandMounter(`rclone mount "my drive:" ` + root + ` --daemon`)
		m.Log = func(format string, args ...interface{}) { logged = append(logged, format) }

		require.NoError(t, m.EnsureMounted(context.Background(), root))
		require.Equal(t, []string{"rclone", "mount", "my drive:", root, "--daemon"}, got)
		require.DirExists(t, root)
		require.NotEmpty(t, logged)
	})

	t.Run("failing command", func(t *testing.T) {
		stubCommand(t, func(string, ...string) *exec.Cmd { return exec.Command("false") })

		m := NewCommandMounter("mount-drive")
		err := m.EnsureMounted(context.Background(), filepath.Join(t.TempDir(), "gdrive"))
		require.ErrorIs(t, err, ddferrors.ErrDriveNotMounted)
	})

	t.Run("command succeeds but root still missing", func(t *testing.T) {
		stubCommand(t, func(string, ...string) *exec.Cmd { return exec.Command("true") })

		m := NewCommandMounter("mount-drive")
		err := m.EnsureMounted(context.Background(), filepath.Join(t.TempDir(), "gdrive"))
		require.ErrorIs(t, err, ddferrors.ErrDriveNotMounted)
		require.Contains(t, err.Error(), "still missing")
	})
}

func TestParseCommand(t *testing.T) {
	t.Setenv("DRIVE_REMOTE", "gdrive:")

	argv, err := ParseCommand("rclone mount $DRIVE_REMOTE /content/gdrive")
	require.NoError(t, err)
	require.Equal(t, []string{"rclone", "mount", "gdrive:", "/content/gdrive"}, argv)

	_, err = ParseCommand("   ")
	require.Error(t, err)

	_, err = ParseCommand(`unterminated "quote`)
	require.Error(t, err)

	require.NotEmpty(t, os.Getenv("DRIVE_REMOTE"))
}

package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnc-br/ddfpane/internal/git"
)

func TestAuthenticatedURL(t *testing.T) {
	t.Run("embeds token as userinfo for https remotes", func(t *testing.T) {
		got, err := git.AuthenticatedURL("https://github.com/tnc-br/ddf_common.git", "ghp_secret")
		require.NoError(t, err)
		require.Equal(t, "https://ghp_secret@github.com/tnc-br/ddf_common.git", got)
	})

	t.Run("replaces existing userinfo", func(t *testing.T) {
		got, err := git.AuthenticatedURL("https://someone@github.com/tnc-br/ddf_common.git", "tok")
		require.NoError(t, err)
		require.Equal(t, "https://tok@github.com/tnc-br/ddf_common.git", got)
	})

	t.Run("leaves local paths unchanged", func(t *testing.T) {
		got, err := git.AuthenticatedURL("/srv/git/ddf_common.git", "tok")
		require.NoError(t, err)
		require.Equal(t, "/srv/git/ddf_common.git", got)

		got, err = git.AuthenticatedURL("file:///srv/git/ddf_common.git", "tok")
		require.NoError(t, err)
		require.Equal(t, "file:///srv/git/ddf_common.git", got)
	})

	t.Run("rejects http remote without host", func(t *testing.T) {
		_, err := git.AuthenticatedURL("https:///ddf_common.git", "tok")
		require.Error(t, err)
	})
}

func TestRedact(t *testing.T) {
	require.Equal(t,
		"push https://***@github.com/tnc-br/ddf_common.git main",
		git.Redact("push https://ghp_secret@github.com/tnc-br/ddf_common.git main"))
	require.Equal(t, "nothing to hide", git.Redact("nothing to hide"))
	require.Equal(t, "user@example.com", git.Redact("user@example.com"))

	args := []string{"push", "https://a:b@example.com/x.git", "main"}
	require.Equal(t, []string{"push", "https://***@example.com/x.git", "main"}, git.RedactArgs(args))
	require.Equal(t, "https://a:b@example.com/x.git", args[1], "input must not be modified")
}

package github_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	githubpkg "github.com/tnc-br/ddfpane/internal/github"
	"github.com/tnc-br/ddfpane/testhelpers"
)

func TestParseRemote(t *testing.T) {
	tests := []struct {
		remote string
		owner  string
		repo   string
		ok     bool
	}{
		{"https://github.com/tnc-br/ddf_common.git", "tnc-br", "ddf_common", true},
		{"https://github.com/tnc-br/ddf_common", "tnc-br", "ddf_common", true},
		{"git@github.com:tnc-br/ddf_common.git", "tnc-br", "ddf_common", true},
		{"ssh://git@github.com/tnc-br/ddf_common.git", "tnc-br", "ddf_common", true},
		{"/srv/git/ddf_common.git", "", "", false},
		{"https://github.com/only-owner", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			owner, repo, ok := githubpkg.ParseRemote(tt.remote)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.owner, owner)
			require.Equal(t, tt.repo, repo)
		})
	}
}

func TestVerifyToken(t *testing.T) {
	t.Run("reports login scopes and push permission", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.Scopes = []string{"repo", "read:org"}
		server := testhelpers.NewMockGitHubServer(t, config)

		client, err := githubpkg.NewRealClient(context.Background(), "ghp_test", server.URL)
		require.NoError(t, err)

		info, err := client.VerifyToken(context.Background(), "tnc-br", "ddf_common")
		require.NoError(t, err)
		require.Equal(t, "octocat", info.Login)
		require.Equal(t, []string{"repo", "read:org"}, info.Scopes)
		require.Equal(t, "tnc-br/ddf_common", info.Repo)
		require.True(t, info.CanPush)
	})

	t.Run("read-only token", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.CanPush = false
		server := testhelpers.NewMockGitHubServer(t, config)

		client, err := githubpkg.NewRealClient(context.Background(), "ghp_test", server.URL)
		require.NoError(t, err)

		info, err := client.VerifyToken(context.Background(), "tnc-br", "ddf_common")
		require.NoError(t, err)
		require.False(t, info.CanPush)
	})

	t.Run("bad credentials", func(t *testing.T) {
		server := testhelpers.NewMockGitHubServer(t, nil)

		client, err := githubpkg.NewRealClient(context.Background(), "wrong", server.URL)
		require.NoError(t, err)

		_, err = client.VerifyToken(context.Background(), "tnc-br", "ddf_common")
		require.Error(t, err)
	})

	t.Run("unknown repository", func(t *testing.T) {
		server := testhelpers.NewMockGitHubServer(t, nil)

		client, err := githubpkg.NewRealClient(context.Background(), "ghp_test", server.URL)
		require.NoError(t, err)

		_, err = client.VerifyToken(context.Background(), "tnc-br", "missing")
		require.Error(t, err)
	})
}

package actions_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/testhelpers"
	"github.com/tnc-br/ddfpane/testhelpers/scenario"
)

func TestCheckoutCommitPushEndToEnd(t *testing.T) {
	s := scenario.NewScenario(t, "test")
	ctx := s.Context

	testhelpers.ExpectWorkingDirUnchanged(t, func() {
		require.NoError(t, actions.CheckoutAction(ctx, actions.CheckoutOptions{}))
	})
	require.DirExists(t, s.Scene.ReadOnlyPath())
	s.ExpectSession("main", s.Scene.ReadOnlyPath())

	view, err := actions.StatusAction(ctx)
	require.NoError(t, err)
	require.True(t, view.ReadOnly)
	require.Equal(t, "main", view.HeadBranch)

	testhelpers.ExpectWorkingDirUnchanged(t, func() {
		err := actions.CheckoutAction(ctx, actions.CheckoutOptions{Email: "dev@example.org", Branch: "test"})
		require.NoError(t, err)
	})
	s.ExpectSession("test", s.Scene.BranchPath("test")).
		ExpectSavedSession("test", s.Scene.BranchPath("test")).
		ExpectOutput("Branch main already checked out.")

	gitConfig, err := os.ReadFile(s.Scene.GitConfig)
	require.NoError(t, err)
	require.Contains(t, string(gitConfig), "dev@example.org")

	s.WriteFile("biomass.py", "def model():\n    return 1\n")
	view, err = actions.StatusAction(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", view.HeadBranch)
	require.False(t, view.Clean)

	testhelpers.ExpectWorkingDirUnchanged(t, func() {
		require.NoError(t, actions.CommitAction(ctx, actions.CommitOptions{Message: "add biomass model"}))
		require.NoError(t, actions.PushAction(ctx, actions.PushOptions{Token: "unused-for-local-remote"}))
	})

	testhelpers.ExpectCommits(t, s.Scene.RemoteRepo(), "test", []string{"add biomass model", "test change"})
	testhelpers.ExpectCommits(t, s.Scene.RemoteRepo(), "main", []string{"initial"})

	// Checking out again reuses the clone and pulls
	require.NoError(t, actions.CheckoutAction(ctx, actions.CheckoutOptions{Email: "dev@example.org", Branch: "test"}))
	s.ExpectOutput("Repository already exists.")
}

func TestCheckoutMissingBranchEndToEnd(t *testing.T) {
	s := scenario.NewScenario(t)

	err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "dev@example.org", Branch: "nope"})
	require.Error(t, err)
	s.ExpectSession("main", "")
	require.NoDirExists(t, s.Scene.BranchPath("nope"))
}

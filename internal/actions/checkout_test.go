package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnc-br/ddfpane/internal/actions"
	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/testhelpers"
	"github.com/tnc-br/ddfpane/testhelpers/scenario"
)

func TestCheckoutAction(t *testing.T) {
	t.Run("read-only clone of main", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		cfg := s.Context.Config

		testhelpers.ExpectWorkingDirUnchanged(t, func() {
			require.NoError(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		})

		require.Equal(t, []string{"clone --quiet -- https://github.com/tnc-br/ddf_common.git ddf_common"}, runner.CommandLines())
		require.Equal(t, cfg.GetTmpDir(), runner.Calls[0].Dir)
		s.ExpectSession("main", cfg.ReadOnlyPath()).
			ExpectSavedSession("main", cfg.ReadOnlyPath()).
			ExpectOutput("main branch checked out as readonly. You may now use ddf_common imports")
	})

	t.Run("read-only removes the previous clone first", func(t *testing.T) {
		s, _ := scenario.NewMockScenario(t)
		stale := filepath.Join(s.Context.Config.ReadOnlyPath(), "stale.py")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0750))
		require.NoError(t, os.WriteFile(stale, []byte("x"), 0600))

		require.NoError(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		require.NoFileExists(t, stale)
	})

	t.Run("failed clone stops before dependent steps", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		runner.FailOn("clone")

		err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "test"})
		require.Error(t, err)
		require.Equal(t, []string{"clone"}, runner.Subcommands())
		s.ExpectSession("main", "").ExpectSavedSession("main", "")
	})

	t.Run("failed read-only clone leaves session unchanged", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		runner.FailOn("clone")

		require.Error(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		s.ExpectSession("main", "")
	})

	t.Run("failed read-only re-checkout forgets the removed clone", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		path := s.Context.Config.ReadOnlyPath()
		require.NoError(t, os.MkdirAll(path, 0750))
		s.CheckedOut("main", path)
		require.NoError(t, s.Context.SaveSession())
		runner.FailOn("clone")

		require.Error(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		require.NoDirExists(t, path)
		s.ExpectSession("main", "").ExpectSavedSession("main", "")
	})

	t.Run("failed read-only checkout keeps a writable session", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		s.CheckedOut("test", "/drive/test/ddf_common")
		runner.FailOn("clone")

		require.Error(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		s.ExpectSession("test", "/drive/test/ddf_common")
	})

	t.Run("writable branch checkout", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		cfg := s.Context.Config
		path := cfg.BranchPath("test")

		testhelpers.ExpectWorkingDirUnchanged(t, func() {
			err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "test"})
			require.NoError(t, err)
		})

		require.Equal(t, []string{
			"clone -b test --quiet -- https://github.com/tnc-br/ddf_common.git ddf_common",
			"pull",
			"config --global user.email me@example.org",
		}, runner.CommandLines())
		require.Equal(t, cfg.BranchDir("test"), runner.Calls[0].Dir)
		require.Equal(t, path, runner.Calls[1].Dir)
		require.DirExists(t, cfg.BranchDir("test"))

		s.ExpectSession("test", path).
			ExpectSavedSession("test", path).
			ExpectOutput(`test branch checked out at "` + path + `". You may now use ddf_common imports and change common files.`)
	})

	t.Run("missing email", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)

		err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Branch: "test"})
		require.ErrorIs(t, err, ddferrors.ErrNoEmail)
		require.Empty(t, runner.Calls)
		s.ExpectSession("main", "")
	})

	t.Run("invalid branch name", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)

		err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "../../etc"})
		require.ErrorIs(t, err, ddferrors.ErrInvalidBranchName)
		require.Empty(t, runner.Calls)
	})

	t.Run("drive not mounted", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		require.NoError(t, os.RemoveAll(s.Context.Config.GetDriveRoot()))

		err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "test"})
		require.ErrorIs(t, err, ddferrors.ErrDriveNotMounted)
		require.Empty(t, runner.Calls)
	})

	t.Run("pull and config failures are not fatal", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		runner.FailOn("pull").FailOn("config")

		err := actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "test"})
		require.NoError(t, err)
		require.Equal(t, []string{"clone", "pull", "config"}, runner.Subcommands())
		s.ExpectSession("test", s.Context.Config.BranchPath("test")).
			ExpectOutput("git pull failed", "could not set git user.email")
	})

	t.Run("existing clone is reused", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		path := s.Context.Config.BranchPath("test")
		_, err := testhelpers.NewGitRepo(path)
		require.NoError(t, err)

		err = actions.CheckoutAction(s.Context, actions.CheckoutOptions{Email: "me@example.org", Branch: "test"})
		require.NoError(t, err)
		require.Equal(t, []string{"pull", "config"}, runner.Subcommands())
		s.ExpectOutput("Repository already exists.")
	})

	t.Run("second checkout reminds to reload imports", func(t *testing.T) {
		s, _ := scenario.NewMockScenario(t)
		s.CheckedOut("test", "/somewhere/ddf_common")

		require.NoError(t, actions.CheckoutAction(s.Context, actions.CheckoutOptions{}))
		s.ExpectOutput("Branch test already checked out.", actions.ReloadReminder).
			ExpectSession("main", s.Context.Config.ReadOnlyPath())
	})
}

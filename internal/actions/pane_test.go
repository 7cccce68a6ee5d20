package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnc-br/ddfpane/internal/actions"
	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/testhelpers"
	"github.com/tnc-br/ddfpane/testhelpers/scenario"
)

func TestPaneAction(t *testing.T) {
	t.Run("read-only checkout stops after clone", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		p := &testhelpers.ScriptedPrompter{Texts: []string{""}}

		require.NoError(t, actions.PaneAction(s.Context, actions.PaneOptions{Prompter: p}))
		require.Equal(t, []string{"clone"}, runner.Subcommands())
		require.Len(t, p.Asked, 1)
	})

	t.Run("checkout commit and push", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		p := &testhelpers.ScriptedPrompter{
			Texts:     []string{"test", "me@example.org", "update model"},
			Confirms:  []bool{true},
			Passwords: []string{"ghp_secret"},
		}

		require.NoError(t, actions.PaneAction(s.Context, actions.PaneOptions{Prompter: p}))
		require.Equal(t, []string{"clone", "pull", "config", "add", "commit", "push"}, runner.Subcommands())
		require.Contains(t, p.Asked, "Push to test?")
		require.Equal(t, "push https://ghp_secret@github.com/tnc-br/ddf_common.git test", runner.CommandLines()[5])
	})

	t.Run("declining push", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		p := &testhelpers.ScriptedPrompter{
			Texts:    []string{"test", "me@example.org", "update model"},
			Confirms: []bool{false},
		}

		require.NoError(t, actions.PaneAction(s.Context, actions.PaneOptions{Prompter: p}))
		require.NotContains(t, runner.Subcommands(), "push")
		s.ExpectOutput("Not pushing.")
	})

	t.Run("empty commit message ends the pane", func(t *testing.T) {
		s, runner := scenario.NewMockScenario(t)
		p := &testhelpers.ScriptedPrompter{Texts: []string{"test", "me@example.org", ""}}

		err := actions.PaneAction(s.Context, actions.PaneOptions{Prompter: p})
		require.ErrorIs(t, err, ddferrors.ErrEmptyCommitMessage)
		require.Equal(t, []string{"clone", "pull", "config"}, runner.Subcommands())
	})
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/internal/cli/common"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// newPaneCmd creates the interactive pane command
func newPaneCmd() *cobra.Command {
	var (
		branch string
		email  string
	)

	cmd := &cobra.Command{
		Use:   "pane",
		Short: "Walk through checkout, commit and push interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsInteractive() {
				return fmt.Errorf("pane needs an interactive terminal; use checkout, commit and push instead")
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PaneAction(ctx, actions.PaneOptions{
					Prompter: tui.TerminalPrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
					Branch:   branch,
					Email:    email,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Prefill the branch prompt")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Prefill the email prompt")
	_ = cmd.RegisterFlagCompletionFunc("branch", common.CompleteBranches)

	return cmd
}

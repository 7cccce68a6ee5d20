package cli

import (
	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/internal/cli/common"
	"github.com/tnc-br/ddfpane/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Stage all changes in the checkout and commit them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, actions.CommitOptions{Message: message})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/internal/cli/common"
	"github.com/tnc-br/ddfpane/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var (
		branch string
		email  string
	)

	cmd := &cobra.Command{
		Use:     "checkout",
		Aliases: []string{"co"},
		Short:   "Clone ddf_common, read-only from main or writable for a branch",
		Long: `Clone ddf_common and remember the checkout for later commands.

Without --branch, main is cloned read-only into the temporary directory,
replacing any previous read-only clone. With --branch, the branch is cloned
onto the drive and pulled if it is already there. --email is required with
--branch and is set as the global git user.email for commits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, actions.CheckoutOptions{
					Email:  email,
					Branch: branch,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to check out for editing")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email recorded on commits")
	_ = cmd.RegisterFlagCompletionFunc("branch", common.CompleteBranches)

	return cmd
}

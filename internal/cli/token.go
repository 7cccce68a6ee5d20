package cli

import (
	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/internal/cli/common"
	"github.com/tnc-br/ddfpane/internal/runtime"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect GitHub access tokens",
	}
	cmd.AddCommand(newTokenVerifyCmd())
	return cmd
}

func newTokenVerifyCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check who owns a token and whether it can push to the remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				tok, err := resolveToken(cmd, token)
				if err != nil {
					return err
				}
				_, err = actions.VerifyTokenAction(ctx, actions.TokenVerifyOptions{Token: tok})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "GitHub personal access token")

	return cmd
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/actions"
	"github.com/tnc-br/ddfpane/internal/cli/common"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// TokenEnvVar names the environment variable read when --token is absent
const TokenEnvVar = "DDFPANE_TOKEN"

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		token  string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the checked-out branch to GitHub",
		Long: `Push the checked-out branch to GitHub using a personal access token.

The token is taken from --token, then from $DDFPANE_TOKEN, and is prompted
for when running in a terminal. It is never written to disk or logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				tok, err := resolveToken(cmd, token)
				if err != nil {
					return err
				}
				return actions.PushAction(ctx, actions.PushOptions{Token: tok, Verify: verify})
			})
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "GitHub personal access token")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check that the token can push before pushing")

	return cmd
}

// resolveToken returns the flag value, the environment value or a value
// prompted for on the command's input, in that order. An empty result is left
// for the action to reject.
func resolveToken(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(TokenEnvVar); env != "" {
		return env, nil
	}
	if !tui.IsInteractive() {
		return "", nil
	}
	return tui.TerminalPrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}.Password("GitHub token")
}

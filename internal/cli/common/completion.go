package common

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/config"
	"github.com/tnc-br/ddfpane/internal/git"
)

// CompleteBranches is a helper for RegisterFlagCompletionFunc that returns
// the branch names on the configured remote.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runner := git.NewCommandRunner(cfg.GetCommandTimeout())
	branches, err := git.RemoteBranches(ctx, runner, cfg.GetTmpDir(), cfg.GetRemote())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

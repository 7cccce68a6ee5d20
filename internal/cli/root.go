package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tnc-br/ddfpane/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ddfpane",
		Short: "Check out, commit and push changes to the shared ddf_common repository",
		Long: `ddfpane is the source control pane for ddf_common.

Without a branch it clones main read-only into a temporary directory so the
shared modules can be imported. With a branch and an email it clones that
branch onto the mounted drive, where changes survive the session, and lets
you commit and push them back.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (default ~/.ddfpane/config.yaml); quote values containing \": \"")
	rootCmd.PersistentFlags().String("state-file", "", "Path to the session file (default ~/.ddfpane/session.json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print git commands as they run")

	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPaneCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// Run executes the command line in args, where args[0] is the program name,
// and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdin, stdout, stderr)
}

// RunContext is Run with a context that cancels running git commands
func RunContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(version, commit, date)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported *common.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Build information, set by SetVersionInfo
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records the build information shown by --version
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

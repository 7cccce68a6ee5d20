// Package common provides shared helper functions for CLI commands.
package common

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// ReportedError wraps an error that has already been shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Run is a helper that provides a runtime context to a command's execution function.
// Errors returned by fn are reported through the context's logger.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := GetContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Splog.Close()

	if err := fn(ctx); err != nil {
		ReportError(ctx.Splog, err)
		return &ReportedError{Err: err}
	}
	return nil
}

// GetContext builds the runtime context from the root command's persistent flags
func GetContext(cmd *cobra.Command) (*runtime.Context, error) {
	configPath, _ := cmd.Flags().GetString("config")
	statePath, _ := cmd.Flags().GetString("state-file")
	debug, _ := cmd.Flags().GetBool("debug")

	ctx, err := runtime.GetContext(runtime.Options{
		ConfigPath:  configPath,
		StatePath:   statePath,
		Debug:       debug,
		Stdout:      cmd.OutOrStdout(),
		LogFilePath: tui.GetLogFilePath(),
	})
	if err != nil {
		return nil, err
	}
	if c := cmd.Context(); c != nil {
		ctx.Context = c
	} else {
		ctx.Context = context.Background()
	}
	return ctx, nil
}

// ReportError prints err the way the pane reports problems: missing input
// and missing checkout are warnings, everything else is an error.
func ReportError(splog *tui.Splog, err error) {
	switch {
	case errors.Is(err, ddferrors.ErrNotCheckedOut):
		splog.Warn("Branch not checked out for editing!")
		splog.Tip("Run `ddfpane checkout --branch <name> --email <email>` first.")
	case errors.Is(err, ddferrors.ErrEmptyCommitMessage):
		splog.Warn("No commit message provided.")
	case errors.Is(err, ddferrors.ErrNoEmail):
		splog.Warn("No email provided.")
	case errors.Is(err, ddferrors.ErrNoToken):
		splog.Warn("No access token provided.")
		splog.Tip("Pass --token or set DDFPANE_TOKEN.")
	case errors.Is(err, ddferrors.ErrDriveNotMounted):
		splog.Error("%v", err)
		splog.Tip("Set mount_command in the ddfpane config to mount the drive automatically.")
	default:
		splog.Error("%v", err)
	}
}

package actions

import (
	"strings"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/runtime"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Message string
}

// CommitAction stages and commits every change in the checked-out clone
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	splog := ctx.Splog
	splog.Debug("executing commit...")

	if strings.TrimSpace(opts.Message) == "" {
		return ddferrors.ErrEmptyCommitMessage
	}
	if !ctx.Session.CheckedOut() {
		return ddferrors.ErrNotCheckedOut
	}
	path := ctx.Session.Path

	out, err := git.StageAll(ctx.Context, ctx.Runner, path)
	logOutput(splog, out)
	if err != nil {
		return err
	}

	out, err = git.Commit(ctx.Context, ctx.Runner, path, opts.Message)
	logOutput(splog, out)
	if err != nil {
		return err
	}

	splog.Info("committed change.")
	return nil
}

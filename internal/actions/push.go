package actions

import (
	"fmt"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// PushOptions contains options for the push command
type PushOptions struct {
	Token string
	// Verify checks the token's push permission on GitHub before pushing
	Verify bool
}

// PushAction pushes the checked-out branch using token for authentication
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	splog := ctx.Splog
	splog.Debug("executing push...")

	if !ctx.Session.CheckedOut() {
		return ddferrors.ErrNotCheckedOut
	}
	if opts.Token == "" {
		return ddferrors.ErrNoToken
	}

	if opts.Verify {
		info, err := VerifyTokenAction(ctx, TokenVerifyOptions{Token: opts.Token, Quiet: true})
		if err != nil {
			return err
		}
		if !info.CanPush {
			return fmt.Errorf("token for %s cannot push to %s", info.Login, info.Repo)
		}
	}

	remoteURL, err := git.AuthenticatedURL(ctx.Config.GetRemote(), opts.Token)
	if err != nil {
		return err
	}

	branch := ctx.Session.Branch
	out, err := git.PushBranch(ctx.Context, ctx.Runner, ctx.Session.Path, remoteURL, branch)
	logOutput(splog, out)
	if err != nil {
		return err
	}

	splog.Info("pushed %s.", tui.ColorBranchName(branch))
	return nil
}

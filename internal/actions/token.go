package actions

import (
	"fmt"
	"strings"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/github"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// TokenVerifyOptions contains options for the token verify command
type TokenVerifyOptions struct {
	Token string
	// Quiet suppresses the report
	Quiet bool
}

// VerifyTokenAction checks who owns token and whether it can push to the remote
func VerifyTokenAction(ctx *runtime.Context, opts TokenVerifyOptions) (*github.TokenInfo, error) {
	if opts.Token == "" {
		return nil, ddferrors.ErrNoToken
	}

	remote := ctx.Config.GetRemote()
	owner, repo, ok := github.ParseRemote(remote)
	if !ok {
		return nil, fmt.Errorf("remote %s is not a GitHub repository", remote)
	}

	client, err := ctx.NewGitHubClient(ctx.Context, opts.Token)
	if err != nil {
		return nil, err
	}
	info, err := client.VerifyToken(ctx.Context, owner, repo)
	if err != nil {
		return nil, err
	}

	if !opts.Quiet {
		splog := ctx.Splog
		splog.Info("Token belongs to %s.", tui.ColorCyan(info.Login))
		if len(info.Scopes) > 0 {
			splog.Info("Scopes: %s", strings.Join(info.Scopes, ", "))
		}
		if info.CanPush {
			splog.Success("Token can push to %s.", info.Repo)
		} else {
			splog.Warn("Token cannot push to %s.", info.Repo)
		}
	}
	return info, nil
}

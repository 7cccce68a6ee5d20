package actions

import (
	"fmt"
	"os"

	"github.com/tnc-br/ddfpane/internal/config"
	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// CheckoutOptions contains options for the checkout command
type CheckoutOptions struct {
	// Email is required for a writable branch checkout
	Email string
	// Branch selects a writable checkout on the drive. Empty means a
	// read-only clone of main in the temp directory.
	Branch string
}

// CheckoutAction clones the shared repository and records it in the session
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	splog := ctx.Splog
	splog.Debug("executing checkout %s...", opts.Branch)

	if ctx.Session.CheckedOut() {
		splog.Info("Branch %s already checked out.", tui.ColorBranchName(ctx.Session.Branch))
		splog.Info(ReloadReminder)
	}

	if opts.Branch == "" {
		return checkoutReadOnly(ctx)
	}
	return checkoutBranch(ctx, opts)
}

func checkoutReadOnly(ctx *runtime.Context) error {
	cfg := ctx.Config
	splog := ctx.Splog
	path := cfg.ReadOnlyPath()

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove previous clone: %w", err)
	}
	// The session must not point at the removed clone if the new clone fails
	if ctx.Session.Path == path {
		ctx.Session.Set(config.DefaultBranch, "")
		if err := ctx.SaveSession(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(cfg.GetTmpDir(), 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.GetTmpDir(), err)
	}

	out, err := git.Clone(ctx.Context, ctx.Runner, cfg.GetTmpDir(), cfg.GetRemote(), git.CloneOptions{
		Quiet:     true,
		Directory: cfg.GetRepoName(),
	})
	logOutput(splog, out)
	if err != nil {
		return err
	}

	ctx.Session.Set(config.DefaultBranch, path)
	if err := ctx.SaveSession(); err != nil {
		return err
	}
	splog.Info("main branch checked out as readonly. You may now use %s imports", cfg.GetRepoName())
	return nil
}

func checkoutBranch(ctx *runtime.Context, opts CheckoutOptions) error {
	cfg := ctx.Config
	splog := ctx.Splog
	branch := opts.Branch

	if opts.Email == "" {
		return ddferrors.ErrNoEmail
	}
	if err := git.ValidateBranchName(branch); err != nil {
		return err
	}

	if ctx.Mounter != nil {
		if err := ctx.Mounter.EnsureMounted(ctx.Context, cfg.GetDriveRoot()); err != nil {
			return err
		}
	}

	dir := cfg.BranchDir(branch)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := cfg.BranchPath(branch)
	if git.IsRepository(path) {
		splog.Info("Repository already exists.")
	} else {
		out, err := git.Clone(ctx.Context, ctx.Runner, dir, cfg.GetRemote(), git.CloneOptions{
			Branch:    branch,
			Quiet:     true,
			Directory: cfg.GetRepoName(),
		})
		logOutput(splog, out)
		if err != nil {
			return err
		}
	}

	// Neither step blocks the checkout
	out, err := git.Pull(ctx.Context, ctx.Runner, path)
	logOutput(splog, out)
	if err != nil {
		splog.Warn("git pull failed: %v", err)
	}
	out, err = git.SetGlobalUserEmail(ctx.Context, ctx.Runner, path, opts.Email)
	logOutput(splog, out)
	if err != nil {
		splog.Warn("could not set git user.email: %v", err)
	}

	ctx.Session.Set(branch, path)
	if err := ctx.SaveSession(); err != nil {
		return err
	}
	splog.Info("%s branch checked out at %q. You may now use %s imports and change common files.",
		branch, path, cfg.GetRepoName())
	return nil
}

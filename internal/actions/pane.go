package actions

import (
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// PaneOptions contains options for the interactive pane
type PaneOptions struct {
	Prompter tui.Prompter
	// Branch and Email prefill the checkout prompts
	Branch string
	Email  string
}

// PaneAction chains checkout, commit and push behind prompts. The commit
// step is offered only after a writable checkout, and push only after a
// successful commit.
func PaneAction(ctx *runtime.Context, opts PaneOptions) error {
	p := opts.Prompter
	if p == nil {
		p = tui.TerminalPrompter{}
	}

	branch, err := p.Text("Branch name (leave empty for a read-only main checkout)", opts.Branch)
	if err != nil {
		return err
	}
	email := ""
	if branch != "" {
		email, err = p.Text("Email", opts.Email)
		if err != nil {
			return err
		}
	}

	if err := CheckoutAction(ctx, CheckoutOptions{Email: email, Branch: branch}); err != nil {
		return err
	}
	if branch == "" {
		return nil
	}

	message, err := p.Text("Commit message", "")
	if err != nil {
		return err
	}
	if err := CommitAction(ctx, CommitOptions{Message: message}); err != nil {
		return err
	}

	push, err := p.Confirm("Push to "+ctx.Session.Branch+"?", false)
	if err != nil {
		return err
	}
	if !push {
		ctx.Splog.Info("Not pushing. Run `ddfpane push` when ready.")
		return nil
	}

	token, err := p.Password("GitHub token")
	if err != nil {
		return err
	}
	return PushAction(ctx, PushOptions{Token: token})
}

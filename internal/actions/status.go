package actions

import (
	"github.com/tnc-br/ddfpane/internal/config"
	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// StatusAction reports the session and the state of its clone
func StatusAction(ctx *runtime.Context) (tui.StatusView, error) {
	session := ctx.Session
	view := tui.StatusView{
		Branch:   session.Branch,
		Path:     session.Path,
		ReadOnly: session.CheckedOut() && session.Path == ctx.Config.ReadOnlyPath(),
	}

	if session.CheckedOut() && git.IsRepository(session.Path) {
		st, err := git.Status(session.Path)
		if err != nil {
			return view, err
		}
		view.Exists = true
		view.HeadBranch = st.Branch
		view.Head = st.Head
		view.Clean = st.Clean
		view.Modified = st.Modified
	}

	ctx.Splog.Page(tui.RenderStatus(view))
	return view, nil
}

// PathAction returns the checked-out path
func PathAction(ctx *runtime.Context) (string, error) {
	if !ctx.Session.CheckedOut() {
		return "", ddferrors.ErrNotCheckedOut
	}
	return ctx.Session.Path, nil
}

// ResetAction forgets the session. Clones on disk are left alone.
func ResetAction(ctx *runtime.Context) error {
	ctx.Session.Set(config.DefaultBranch, "")
	if ctx.Store != nil {
		if err := ctx.Store.Clear(); err != nil {
			return err
		}
	}
	ctx.Splog.Info("Session cleared.")
	return nil
}

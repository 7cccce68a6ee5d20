package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/tnc-br/ddfpane/internal/config"
	"github.com/tnc-br/ddfpane/internal/drive"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/github"
	"github.com/tnc-br/ddfpane/internal/tui"
)

// GitHubClientFactory creates a GitHub client authenticated with token
type GitHubClientFactory func(ctx context.Context, token string) (github.Client, error)

// Context provides access to configuration, session and output for commands
type Context struct {
	// Context carries cancellation for git subprocesses
	Context context.Context

	Config  *config.Config
	Session *config.Session
	// Store persists Session between invocations. Nil keeps it in memory only.
	Store   *config.SessionStore
	Splog   *tui.Splog
	Runner  git.Runner
	Mounter drive.Mounter

	NewGitHubClient GitHubClientFactory
}

// NewContext creates a context with an in-memory default session
func NewContext(cfg *config.Config, splog *tui.Splog, runner git.Runner, mounter drive.Mounter) *Context {
	return &Context{
		Context: context.Background(),
		Config:  cfg,
		Session: config.NewSession(),
		Splog:   splog,
		Runner:  runner,
		Mounter: mounter,
		NewGitHubClient: func(ctx context.Context, token string) (github.Client, error) {
			return github.NewRealClient(ctx, token, cfg.GetGitHubAPIURL())
		},
	}
}

// Options configures GetContext
type Options struct {
	ConfigPath string
	StatePath  string
	Debug      bool
	// Stdout receives console output. Nil means os.Stdout.
	Stdout io.Writer
	// LogFilePath enables the rotating file log when non-empty.
	LogFilePath string
}

// GetContext loads configuration and the persisted session and wires the
// real git runner and drive mounter.
func GetContext(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{
		Writer:      opts.Stdout,
		LogFilePath: opts.LogFilePath,
		Debug:       opts.Debug,
	})
	if err != nil {
		// Keep console output working when the log directory is unwritable
		splog, err = tui.NewSplogWithConfig(tui.SplogOptions{Writer: opts.Stdout, Debug: opts.Debug})
		if err != nil {
			return nil, err
		}
		splog.Debug("file logging disabled: %s", opts.LogFilePath)
	}

	store := config.NewSessionStore(opts.StatePath)
	session, err := store.Load()
	if err != nil {
		return nil, err
	}

	runner := git.NewCommandRunner(cfg.GetCommandTimeout())
	runner.Trace = splog.Debug

	mounter := drive.NewCommandMounter(cfg.GetMountCommand())
	mounter.Log = splog.Info

	ctx := NewContext(cfg, splog, runner, mounter)
	ctx.Session = session
	ctx.Store = store
	return ctx, nil
}

// SaveSession persists the session if the context has a store
func (c *Context) SaveSession() error {
	if c.Store == nil {
		return nil
	}
	if err := c.Store.Save(c.Session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner executes a single git invocation in dir and returns its combined output.
// It allows the actions to be used with both real git and mock implementations.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CommandRunner runs the git binary found on PATH.
type CommandRunner struct {
	// Timeout applies when the context has no deadline. Zero means DefaultCommandTimeout.
	Timeout time.Duration
	// Env is appended to the process environment.
	Env []string
	// Trace, when set, receives the redacted command line before it runs.
	Trace func(format string, args ...interface{})
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(timeout time.Duration) *CommandRunner {
	return &CommandRunner{Timeout: timeout}
}

// Run executes git with args in dir. Stdout and stderr are captured together.
// Credentials embedded in URLs are redacted from the returned output and error.
func (r *CommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		timeout := r.Timeout
		if timeout <= 0 {
			timeout = DefaultCommandTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	redacted := RedactArgs(args)
	if r.Trace != nil {
		r.Trace("+ git %s", strings.Join(redacted, " "))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// No terminal is attached, so git must fail instead of waiting for credentials.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Env = append(cmd.Env, r.Env...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := Redact(strings.TrimSpace(out.String()))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return output, ddferrors.NewGitCommandError("git", redacted, dir, output, err)
	}
	return output, nil
}

// IsGitInstalled returns true if git is available on the system PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

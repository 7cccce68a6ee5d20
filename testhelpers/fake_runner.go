package testhelpers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/internal/git"
)

// RunnerCall records a single git invocation.
type RunnerCall struct {
	Dir  string
	Args []string
}

// FakeRunner records git invocations instead of running them. Failures and
// outputs are keyed by the git subcommand (the first argument).
type FakeRunner struct {
	mu      sync.Mutex
	Calls   []RunnerCall
	Fail    map[string]error
	Outputs map[string]string
}

// NewFakeRunner creates a FakeRunner where every command succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Fail:    map[string]error{},
		Outputs: map[string]string{},
	}
}

// FailOn makes every invocation of subcommand fail.
func (f *FakeRunner) FailOn(subcommand string) *FakeRunner {
	f.Fail[subcommand] = fmt.Errorf("exit status 128")
	return f
}

// Run implements git.Runner. Failures are GitCommandErrors with redacted
// args, as CommandRunner returns them.
func (f *FakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, RunnerCall{Dir: dir, Args: append([]string(nil), args...)})
	if len(args) == 0 {
		return "", nil
	}
	if err, ok := f.Fail[args[0]]; ok {
		out := "fatal: " + args[0] + " failed"
		return out, ddferrors.NewGitCommandError("git", git.RedactArgs(args), dir, out, err)
	}
	return f.Outputs[args[0]], nil
}

// Subcommands returns the subcommand of each recorded call, in order.
func (f *FakeRunner) Subcommands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		if len(c.Args) > 0 {
			out = append(out, c.Args[0])
		}
	}
	return out
}

// CommandLines returns each recorded call joined with spaces.
func (f *FakeRunner) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, strings.Join(c.Args, " "))
	}
	return out
}

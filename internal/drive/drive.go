// Package drive makes sure the cloud drive that holds writable clones is
// mounted before a branch is checked out into it.
package drive

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
)

// CommandContext is initialized to exec.CommandContext. It is intended to be
// overridden in tests.
var CommandContext = exec.CommandContext

// Mounter ensures a drive root exists.
type Mounter interface {
	EnsureMounted(ctx context.Context, root string) error
}

// CommandMounter mounts the drive by running a configured command.
type CommandMounter struct {
	// Command is split into argv with shell word rules; it is never run by a shell.
	Command string
	// Log receives the mount command and its output. Optional.
	Log func(format string, args ...interface{})
}

// NewCommandMounter creates a CommandMounter for command
func NewCommandMounter(command string) *CommandMounter {
	return &CommandMounter{Command: command}
}

// EnsureMounted returns nil when root already exists. Otherwise it runs the
// mount command, after which root must exist.
func (m *CommandMounter) EnsureMounted(ctx context.Context, root string) error {
	if isDir(root) {
		return nil
	}
	if strings.TrimSpace(m.Command) == "" {
		return fmt.Errorf("%w: %s does not exist; mount it or set mount_command", ddferrors.ErrDriveNotMounted, root)
	}

	argv, err := ParseCommand(m.Command)
	if err != nil {
		return err
	}

	m.logf("Mounting drive at %s", root)
	m.logf("+ %s", strings.Join(argv, " "))
	out, err := CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if s := strings.TrimSpace(string(out)); s != "" {
		m.logf("%s", s)
	}
	if err != nil {
		return fmt.Errorf("%w: mount command failed: %w", ddferrors.ErrDriveNotMounted, err)
	}

	if !isDir(root) {
		return fmt.Errorf("%w: %s still missing after mount command", ddferrors.ErrDriveNotMounted, root)
	}
	return nil
}

// ParseCommand splits command into argv. Environment variables are expanded;
// pipes, redirections and substitutions are not allowed.
func ParseCommand(command string) ([]string, error) {
	argv, err := shell.Fields(command, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid mount command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid mount command %q: empty", command)
	}
	return argv, nil
}

func (m *CommandMounter) logf(format string, args ...interface{}) {
	if m.Log != nil {
		m.Log(format, args...)
	}
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

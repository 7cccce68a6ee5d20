package git

import (
	"context"
	"fmt"
)

// CloneOptions configures a git clone operation.
type CloneOptions struct {
	Branch string
	Quiet  bool
	// Directory names the clone inside the parent. Empty lets git derive it
	// from the remote.
	Directory string
}

// Clone clones remote into a new directory inside parentDir.
func Clone(ctx context.Context, r Runner, parentDir, remote string, opts CloneOptions) (string, error) {
	args := []string{"clone"}
	if opts.Branch != "" {
		args = append(args, "-b", opts.Branch)
	}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	args = append(args, "--", remote)
	if opts.Directory != "" {
		args = append(args, opts.Directory)
	}

	out, err := r.Run(ctx, parentDir, args...)
	if err != nil {
		return out, fmt.Errorf("cloning %s: %w", Redact(remote), err)
	}
	return out, nil
}

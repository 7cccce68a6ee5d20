package git

import (
	"context"
	"fmt"
)

// StageAll runs git add . in repoDir.
func StageAll(ctx context.Context, r Runner, repoDir string) (string, error) {
	out, err := r.Run(ctx, repoDir, "add", ".")
	if err != nil {
		return out, fmt.Errorf("staging changes: %w", err)
	}
	return out, nil
}

// Commit creates a commit with the given message in repoDir.
func Commit(ctx context.Context, r Runner, repoDir, message string) (string, error) {
	out, err := r.Run(ctx, repoDir, "commit", "-m", message)
	if err != nil {
		return out, fmt.Errorf("failed to commit: %w", err)
	}
	return out, nil
}

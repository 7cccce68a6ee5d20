package git

import (
	"context"
	"fmt"
)

// Pull runs git pull in repoDir using the branch's configured upstream.
func Pull(ctx context.Context, r Runner, repoDir string) (string, error) {
	out, err := r.Run(ctx, repoDir, "pull")
	if err != nil {
		return out, fmt.Errorf("failed to pull: %w", err)
	}
	return out, nil
}

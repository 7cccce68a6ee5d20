package git

import (
	"context"
	"fmt"
)

// PushBranch pushes branchName to remoteURL. The URL may carry credentials;
// they are redacted from the returned output and error.
func PushBranch(ctx context.Context, r Runner, repoDir, remoteURL, branchName string) (string, error) {
	out, err := r.Run(ctx, repoDir, "push", remoteURL, branchName)
	if err != nil {
		return out, fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return out, nil
}

package git

import (
	"context"
	"fmt"
)

// SetGlobalUserEmail runs git config --global user.email email.
func SetGlobalUserEmail(ctx context.Context, r Runner, dir, email string) (string, error) {
	out, err := r.Run(ctx, dir, "config", "--global", "user.email", email)
	if err != nil {
		return out, fmt.Errorf("failed to set git user email: %w", err)
	}
	return out, nil
}

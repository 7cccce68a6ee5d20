package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// RemoteBranches lists the branch names on remote without cloning it
func RemoteBranches(ctx context.Context, r Runner, dir, remote string) ([]string, error) {
	out, err := r.Run(ctx, dir, "ls-remote", "--heads", "--", remote)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches on %s: %w", Redact(remote), err)
	}

	var branches []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		if name, ok := strings.CutPrefix(fields[1], "refs/heads/"); ok {
			branches = append(branches, name)
		}
	}
	sort.Strings(branches)
	return branches, nil
}

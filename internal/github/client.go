// Package github provides a client for interacting with the GitHub API.
package github

import (
	"context"
	"net/url"
	"strings"
)

// TokenInfo describes what an access token can do on the shared repository.
// This is a simplified struct to avoid coupling to go-github library
type TokenInfo struct {
	Login   string
	Scopes  []string
	Repo    string // owner/name
	CanPush bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// VerifyToken resolves the token owner and its permissions on owner/repo
	VerifyToken(ctx context.Context, owner, repo string) (*TokenInfo, error)
}

// ParseRemote extracts owner and repository name from an https or ssh
// remote URL. ok is false for anything else, such as a local path.
func ParseRemote(remote string) (owner, repo string, ok bool) {
	var path string
	if strings.HasPrefix(remote, "git@") {
		// git@github.com:owner/repo.git
		idx := strings.Index(remote, ":")
		if idx < 0 {
			return "", "", false
		}
		path = remote[idx+1:]
	} else {
		u, err := url.Parse(remote)
		if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http" && u.Scheme != "ssh") {
			return "", "", false
		}
		path = u.Path
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

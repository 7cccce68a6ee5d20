package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a client authenticated with token. apiURL overrides
// the API endpoint; empty means api.github.com.
func NewRealClient(ctx context.Context, token, apiURL string) (*RealClient, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = baseURL
	}

	return &RealClient{client: client}, nil
}

// VerifyToken looks up the authenticated user and the repository permissions.
func (c *RealClient) VerifyToken(ctx context.Context, owner, repo string) (*TokenInfo, error) {
	user, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate token: %w", err)
	}

	info := &TokenInfo{
		Login: user.GetLogin(),
		Repo:  owner + "/" + repo,
	}
	if resp != nil {
		for _, s := range strings.Split(resp.Header.Get("X-OAuth-Scopes"), ",") {
			if s = strings.TrimSpace(s); s != "" {
				info.Scopes = append(info.Scopes, s)
			}
		}
	}

	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	info.CanPush = repository.GetPermissions()["push"]

	return info, nil
}

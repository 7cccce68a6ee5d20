package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Token is the only access token the server accepts
	Token  string
	Login  string
	Scopes []string
	// CanPush is reported as the push permission on Owner/Repo
	CanPush bool
	// Owner and Repo for the mock server
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Token:   "ghp_test",
		Login:   "octocat",
		Scopes:  []string{"repo"},
		CanPush: true,
		Owner:   "tnc-br",
		Repo:    "ddf_common",
	}
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub API
// endpoints used for token verification.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+config.Token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"message": "Bad credentials"})
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-OAuth-Scopes", strings.Join(config.Scopes, ", "))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"login": config.Login})
	})
	mux.HandleFunc("/repos/"+config.Owner+"/"+config.Repo, func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"full_name": config.Owner + "/" + config.Repo,
			"permissions": map[string]bool{
				"pull": true,
				"push": config.CanPush,
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

package git

import (
	"fmt"
	"net/url"
	"regexp"
)

var userinfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+@`)

// AuthenticatedURL returns remote with token set as the URL userinfo, the form
// git accepts for token pushes (https://<token>@host/org/repo.git).
// Remotes that are not http(s) URLs, such as local paths, are returned unchanged.
func AuthenticatedURL(remote, token string) (string, error) {
	u, err := url.Parse(remote)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return remote, nil
	}
	if u.Host == "" {
		return "", fmt.Errorf("remote %q has no host", remote)
	}
	u.User = url.User(token)
	return u.String(), nil
}

// Redact hides URL userinfo in s.
func Redact(s string) string {
	return userinfoPattern.ReplaceAllString(s, "${1}***@")
}

// RedactArgs returns a copy of args with URL userinfo hidden.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = Redact(a)
	}
	return out
}

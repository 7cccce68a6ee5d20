package git

import (
	"strings"
	"unicode"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
)

// ValidateBranchName rejects names that git would refuse as a branch, or that
// could be read as an option or escape the per-branch directory.
func ValidateBranchName(name string) error {
	reason := ""
	switch {
	case name == "":
		reason = "empty"
	case name == "@":
		reason = "reserved name"
	case strings.HasPrefix(name, "-"):
		reason = "must not start with '-'"
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		reason = "must not start or end with '/'"
	case strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock"):
		reason = "must not end with '.' or '.lock'"
	case strings.Contains(name, ".."):
		reason = "must not contain '..'"
	case strings.Contains(name, "//"):
		reason = "must not contain '//'"
	case strings.Contains(name, "@{"):
		reason = "must not contain '@{'"
	case strings.ContainsAny(name, "~^:?*[\\"):
		reason = "must not contain any of ~^:?*[\\"
	}
	if reason == "" {
		for _, r := range name {
			if unicode.IsSpace(r) || unicode.IsControl(r) {
				reason = "must not contain whitespace or control characters"
				break
			}
		}
	}
	if reason == "" {
		for _, part := range strings.Split(name, "/") {
			if strings.HasPrefix(part, ".") {
				reason = "path components must not start with '.'"
				break
			}
		}
	}
	if reason != "" {
		return ddferrors.NewInvalidBranchNameError(name, reason)
	}
	return nil
}

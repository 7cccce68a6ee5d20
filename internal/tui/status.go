package tui

import (
	"fmt"
	"strings"
)

// StatusView is what `ddfpane status` shows
type StatusView struct {
	Branch     string
	Path       string
	ReadOnly   bool
	Exists     bool
	HeadBranch string
	Head       string
	Clean      bool
	Modified   int
}

// RenderStatus formats a StatusView for the terminal
func RenderStatus(v StatusView) string {
	var b strings.Builder

	if v.Path == "" {
		b.WriteString(fmt.Sprintf("Branch:  %s\n", ColorBranchName(v.Branch)))
		b.WriteString(ColorYellow("Nothing checked out.") + "\n")
		return b.String()
	}

	mode := ColorGreen("writable")
	if v.ReadOnly {
		mode = ColorDim("read-only")
	}
	b.WriteString(fmt.Sprintf("Branch:  %s (%s)\n", ColorBranchName(v.Branch), mode))
	b.WriteString(fmt.Sprintf("Path:    %s\n", v.Path))

	if !v.Exists {
		b.WriteString(ColorRed("Clone is missing. Run checkout again.") + "\n")
		return b.String()
	}

	head := v.HeadBranch
	if head == "" {
		head = "(detached)"
	}
	if v.Head != "" {
		head += " @ " + v.Head
	}
	b.WriteString(fmt.Sprintf("HEAD:    %s\n", head))
	if v.HeadBranch != "" && v.HeadBranch != v.Branch {
		b.WriteString(ColorYellow(fmt.Sprintf("Clone is on %s, not %s.", v.HeadBranch, v.Branch)) + "\n")
	}

	if v.Clean {
		b.WriteString(fmt.Sprintf("Changes: %s\n", ColorGreen("none")))
	} else {
		b.WriteString(fmt.Sprintf("Changes: %s\n", ColorYellow(fmt.Sprintf("%d file(s)", v.Modified))))
	}
	return b.String()
}

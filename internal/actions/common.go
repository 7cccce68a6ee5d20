package actions

import (
	"strings"

	"github.com/tnc-br/ddfpane/internal/tui"
)

// ReloadReminder is shown when a checkout replaces an earlier one
const ReloadReminder = "Remember to reload your imports with `importlib.reload(module)`."

// logOutput echoes captured git output, line by line
func logOutput(splog *tui.Splog, out string) {
	if out == "" {
		return
	}
	for _, line := range strings.Split(out, "\n") {
		splog.Info("%s", line)
	}
}

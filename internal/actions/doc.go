// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a ddfpane command (checkout, commit, push, ...)
// and orchestrates operations across the config, git, drive and github packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Session, Splog and Runner
//   - Actions never change the process working directory; git runs with an explicit dir
//   - A failed step returns early and leaves the session unchanged
package actions

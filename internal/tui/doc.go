// Package tui provides the terminal user interface for ddfpane.
//
// It handles:
//   - Interactive prompts (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui

package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If DDFPANE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.ddfpane/logs/ddfpane.log
func GetLogFilePath() string {
	if customPath := os.Getenv("DDFPANE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "ddfpane.log"
	}

	return filepath.Join(homeDir, ".ddfpane", "logs", "ddfpane.log")
}

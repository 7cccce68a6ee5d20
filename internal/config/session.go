package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBranch is the branch a fresh session points at
const DefaultBranch = "main"

// Session is the checked-out branch and the path of its local clone.
// An empty Path means nothing is checked out.
type Session struct {
	Branch string `json:"branch"`
	Path   string `json:"path,omitempty"`
}

// NewSession returns the session before any checkout
func NewSession() *Session {
	return &Session{Branch: DefaultBranch}
}

// CheckedOut returns true once a checkout has recorded a path
func (s *Session) CheckedOut() bool {
	return s != nil && s.Path != ""
}

// Set records a completed checkout
func (s *Session) Set(branch, path string) {
	s.Branch = branch
	s.Path = path
}

// DefaultStatePath returns $DDFPANE_STATE_FILE or ~/.ddfpane/session.json
func DefaultStatePath() string {
	if p := os.Getenv("DDFPANE_STATE_FILE"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".ddfpane", "session.json")
}

// SessionStore persists the session between invocations.
type SessionStore struct {
	Path string
}

// NewSessionStore creates a store at statePath (DefaultStatePath when empty)
func NewSessionStore(statePath string) *SessionStore {
	if statePath == "" {
		statePath = DefaultStatePath()
	}
	return &SessionStore{Path: statePath}
}

// Load reads the session from disk. A missing file yields NewSession.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSession(), nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	session := NewSession()
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", s.Path, err)
	}
	if session.Branch == "" {
		session.Branch = DefaultBranch
	}
	return session, nil
}

// Save writes the session to disk
func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(s.Path, data, 0600)
}

// Clear removes the session file
func (s *SessionStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

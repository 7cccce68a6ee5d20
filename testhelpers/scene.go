package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Scene is an isolated environment for exercising checkout, commit and push
// against a local bare remote. HOME and the global git config point into the
// scene, so `git config --global` never touches the real user config.
type Scene struct {
	Dir        string
	Remote     string // bare repository standing in for the shared remote
	TmpDir     string // parent of the read-only clone
	DriveRoot  string // mounted drive root
	StateFile  string
	ConfigFile string
	GitConfig  string // GIT_CONFIG_GLOBAL
}

// NewScene creates a scene whose remote has main plus the given branches,
// each carrying one extra commit.
func NewScene(t *testing.T, branches ...string) *Scene {
	t.Helper()
	dir := t.TempDir()

	s := &Scene{
		Dir:        dir,
		Remote:     filepath.Join(dir, "remote", "ddf_common.git"),
		TmpDir:     filepath.Join(dir, "tmp"),
		DriveRoot:  filepath.Join(dir, "gdrive"),
		StateFile:  filepath.Join(dir, "home", ".ddfpane", "session.json"),
		ConfigFile: filepath.Join(dir, "home", ".ddfpane", "config.yaml"),
		GitConfig:  filepath.Join(dir, "home", ".gitconfig"),
	}

	for _, d := range []string{s.TmpDir, s.DriveRoot, filepath.Dir(s.StateFile)} {
		if err := os.MkdirAll(d, 0750); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	gitConfig := "[user]\n\tname = Test User\n\temail = test@example.com\n[init]\n\tdefaultBranch = main\n"
	if err := os.WriteFile(s.GitConfig, []byte(gitConfig), 0600); err != nil {
		t.Fatalf("failed to write git config: %v", err)
	}
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("GIT_CONFIG_GLOBAL", s.GitConfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	work, err := NewGitRepo(filepath.Join(dir, "work"))
	if err != nil {
		t.Fatalf("failed to create work repo: %v", err)
	}
	if err := work.CreateChangeAndCommit("initial", "init"); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	for _, b := range branches {
		if err := work.CreateAndCheckoutBranch(b); err != nil {
			t.Fatalf("failed to create branch %s: %v", b, err)
		}
		if err := work.CreateChangeAndCommit(b+" change", "branch"); err != nil {
			t.Fatalf("failed to commit on %s: %v", b, err)
		}
		if err := work.CheckoutBranch("main"); err != nil {
			t.Fatalf("failed to return to main: %v", err)
		}
	}
	if err := work.CloneBare(s.Remote); err != nil {
		t.Fatal(err)
	}

	if err := s.WriteConfig(""); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return s
}

// WriteConfig writes a ddfpane config pointing at the scene. extra is
// appended verbatim as additional YAML lines.
func (s *Scene) WriteConfig(extra string) error {
	content := fmt.Sprintf("remote: %s\ntmp_dir: %s\ndrive_root: %s\n%s", s.Remote, s.TmpDir, s.DriveRoot, extra)
	return os.WriteFile(s.ConfigFile, []byte(content), 0600)
}

// ReadOnlyPath is where the read-only main clone lands.
func (s *Scene) ReadOnlyPath() string {
	return filepath.Join(s.TmpDir, "ddf_common")
}

// BranchPath is where the writable clone of branch lands.
func (s *Scene) BranchPath(branch string) string {
	return filepath.Join(s.DriveRoot, "MyDrive", branch, "ddf_common")
}

// RemoteRepo returns a GitRepo handle on the bare remote.
func (s *Scene) RemoteRepo() *GitRepo {
	return OpenGitRepo(s.Remote)
}

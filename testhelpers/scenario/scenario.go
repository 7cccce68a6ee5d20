// Package scenario provides a high-level test scenario that combines a Scene
// and a runtime Context to provide a terse API for action tests.
package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnc-br/ddfpane/internal/config"
	"github.com/tnc-br/ddfpane/internal/drive"
	"github.com/tnc-br/ddfpane/internal/git"
	"github.com/tnc-br/ddfpane/internal/runtime"
	"github.com/tnc-br/ddfpane/internal/tui"
	"github.com/tnc-br/ddfpane/testhelpers"
)

// Scenario represents a high-level test scenario that combines a Scene
// and a runtime Context wired to real git.
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Context *runtime.Context
	Output  *bytes.Buffer
}

// NewScenario creates a Scenario whose remote has main plus branches.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv.
func NewScenario(t *testing.T, branches ...string) *Scenario {
	t.Helper()

	t.Setenv("DDFPANE_NO_INTERACTIVE", "1")
	scene := testhelpers.NewScene(t, branches...)

	cfg, err := config.Load(scene.ConfigFile)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	ctx := runtime.NewContext(cfg, splog, git.NewCommandRunner(0), drive.NewCommandMounter(""))
	ctx.Store = config.NewSessionStore(scene.StateFile)

	return &Scenario{
		T:       t,
		Scene:   scene,
		Context: ctx,
		Output:  out,
	}
}

// NewMockScenario creates a Scenario backed by a FakeRunner. The remote is a
// GitHub https URL and nothing touches the network.
func NewMockScenario(t *testing.T) (*Scenario, *testhelpers.FakeRunner) {
	t.Helper()

	t.Setenv("DDFPANE_NO_INTERACTIVE", "1")
	dir := t.TempDir()
	driveRoot := filepath.Join(dir, "gdrive")
	require.NoError(t, os.MkdirAll(driveRoot, 0750))

	remote := config.DefaultRemote
	tmpDir := filepath.Join(dir, "tmp")
	cfg := &config.Config{
		Remote:    &remote,
		TmpDir:    &tmpDir,
		DriveRoot: &driveRoot,
	}

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	runner := testhelpers.NewFakeRunner()
	ctx := runtime.NewContext(cfg, splog, runner, drive.NewCommandMounter(""))
	ctx.Store = config.NewSessionStore(filepath.Join(dir, "session.json"))

	return &Scenario{
		T:       t,
		Context: ctx,
		Output:  out,
	}, runner
}

// CheckedOut puts the session at branch/path as if a checkout had run.
func (s *Scenario) CheckedOut(branch, path string) *Scenario {
	s.T.Helper()
	s.Context.Session.Set(branch, path)
	return s
}

// WriteFile writes content to name inside the checked-out clone.
func (s *Scenario) WriteFile(name, content string) *Scenario {
	s.T.Helper()
	require.NotEmpty(s.T, s.Context.Session.Path, "nothing checked out")
	err := os.WriteFile(filepath.Join(s.Context.Session.Path, name), []byte(content), 0600)
	require.NoError(s.T, err)
	return s
}

// ExpectOutput asserts that the console output contains each of want.
func (s *Scenario) ExpectOutput(want ...string) *Scenario {
	s.T.Helper()
	for _, w := range want {
		require.Contains(s.T, s.Output.String(), w)
	}
	return s
}

// ExpectSession asserts the in-memory session.
func (s *Scenario) ExpectSession(branch, path string) *Scenario {
	s.T.Helper()
	require.Equal(s.T, branch, s.Context.Session.Branch)
	require.Equal(s.T, path, s.Context.Session.Path)
	return s
}

// ExpectSavedSession asserts the session persisted on disk.
func (s *Scenario) ExpectSavedSession(branch, path string) *Scenario {
	s.T.Helper()
	saved, err := s.Context.Store.Load()
	require.NoError(s.T, err)
	require.Equal(s.T, branch, saved.Branch)
	require.Equal(s.T, path, saved.Path)
	return s
}

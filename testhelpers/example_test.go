package testhelpers_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	ddferrors "github.com/tnc-br/ddfpane/internal/errors"
	"github.com/tnc-br/ddfpane/testhelpers"
)

// TestSceneRemote checks that the scene remote carries the requested branches.
func TestSceneRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, "test", "feature/x")

	testhelpers.ExpectBranches(t, scene.RemoteRepo(), []string{"feature/x", "main", "test"})
	testhelpers.ExpectCommits(t, scene.RemoteRepo(), "test", []string{"test change", "initial"})
	testhelpers.ExpectCommits(t, scene.RemoteRepo(), "main", []string{"initial"})

	require.DirExists(t, scene.TmpDir)
	require.DirExists(t, scene.DriveRoot)
	require.FileExists(t, scene.ConfigFile)
	require.Equal(t, scene.GitConfig, os.Getenv("GIT_CONFIG_GLOBAL"))
}

func TestFakeRunner(t *testing.T) {
	runner := testhelpers.NewFakeRunner().FailOn("push")
	runner.Outputs["status"] = "clean"

	out, err := runner.Run(context.Background(), "/repo", "status")
	require.NoError(t, err)
	require.Equal(t, "clean", out)

	_, err = runner.Run(context.Background(), "/repo", "push", "https://tok@github.com/o/r.git", "main")
	require.Error(t, err)
	require.False(t, errors.Is(err, context.Canceled))
	var gitErr *ddferrors.GitCommandError
	require.True(t, errors.As(err, &gitErr))
	require.Equal(t, []string{"push", "https://***@github.com/o/r.git", "main"}, gitErr.Args)

	require.Equal(t, []string{"status", "push"}, runner.Subcommands())
	require.Equal(t, []string{"status", "push https://tok@github.com/o/r.git main"}, runner.CommandLines())
	require.Equal(t, "/repo", runner.Calls[1].Dir)
}

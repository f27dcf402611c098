package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/deploy"
	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/testutil"
	"github.com/conn-castle/claude-setup/internal/ui"
)

// deployedTarget returns a bundle and a target that already holds a deployment
// of it plus a stray custom.txt.
func deployedTarget(t *testing.T) (string, string) {
	t.Helper()
	src := testutil.WriteBundle(t, t.TempDir())
	target := t.TempDir()
	_, err := deploy.Deploy(src, target, deploy.Options{})
	require.NoError(t, err)
	testutil.WriteFile(t, filepath.Join(target, bundle.DirName, "custom.txt"), "keep me", 0o644)
	return src, target
}

func TestDeployIntoEmptyTarget(t *testing.T) {
	isolateEnv(t)
	stubPrompter(t, failPrompter{t: t})
	src := testutil.WriteBundle(t, t.TempDir())
	target := t.TempDir()

	out, _, err := runCLI(t, "--bundle", src, "deploy", target)
	require.NoError(t, err)
	assert.Contains(t, out, "success! .claude/ folder copied to "+filepath.Join(target, bundle.DirName)+" (4 files)")
	assert.Contains(t, out, messages.DeployHiddenNote)
	assert.Equal(t, testutil.Snapshot(t, src), testutil.Snapshot(t, filepath.Join(target, bundle.DirName)))
}

func TestDeployDefaultsToProjectRoot(t *testing.T) {
	isolateEnv(t)
	stubPrompter(t, failPrompter{t: t})
	src := testutil.WriteBundle(t, t.TempDir())
	project := t.TempDir()
	testutil.Mkdir(t, filepath.Join(project, ".git"))
	nested := filepath.Join(project, "cmd", "tool")
	testutil.Mkdir(t, nested)
	stubGetwd(t, nested)

	_, _, err := runCLI(t, "--bundle", src, "deploy")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(project, bundle.DirName, "hooks"))
	assert.NoDirExists(t, filepath.Join(nested, bundle.DirName))
}

func TestDeployExistingNonInteractive(t *testing.T) {
	isolateEnv(t)
	stubPrompter(t, &fakePrompter{interactive: false})
	src, target := deployedTarget(t)
	before := testutil.Snapshot(t, target)

	_, stderr, err := runCLI(t, "--bundle", src, "deploy", target)
	require.Error(t, err)
	assert.ErrorIs(t, err, deploy.ErrAlreadyExists)
	assert.Contains(t, stderr, messages.DeployOverwriteRequiresTTY)
	assert.Equal(t, before, testutil.Snapshot(t, target))
}

func TestDeployExistingConfirmed(t *testing.T) {
	isolateEnv(t)
	prompter := &fakePrompter{interactive: true, confirm: true}
	stubPrompter(t, prompter)
	src, target := deployedTarget(t)

	out, _, err := runCLI(t, "--bundle", src, "deploy", target)
	require.NoError(t, err)
	assert.Contains(t, out, "success!")
	assert.NoFileExists(t, filepath.Join(target, bundle.DirName, "custom.txt"))

	require.Len(t, prompter.titles, 1)
	assert.Contains(t, prompter.titles[0], target)
	assert.Equal(t, "An overwrite adds 0, changes 0 and removes 1 file(s) (4 unchanged).", prompter.descriptions[0])
}

func TestDeployExistingDeclined(t *testing.T) {
	for name, prompter := range map[string]*fakePrompter{
		"declined":  {interactive: true, confirm: false},
		"cancelled": {interactive: true, confirmErr: ui.ErrCancelled},
	} {
		t.Run(name, func(t *testing.T) {
			isolateEnv(t)
			stubPrompter(t, prompter)
			src, target := deployedTarget(t)
			before := testutil.Snapshot(t, target)

			out, _, err := runCLI(t, "--bundle", src, "deploy", target)
			require.NoError(t, err)
			assert.Contains(t, out, messages.DeployCancelled)
			assert.Equal(t, before, testutil.Snapshot(t, target))
		})
	}
}

func TestDeployPromptError(t *testing.T) {
	isolateEnv(t)
	boom := errors.New("render failed")
	stubPrompter(t, &fakePrompter{interactive: true, confirmErr: boom})
	src, target := deployedTarget(t)

	_, _, err := runCLI(t, "--bundle", src, "deploy", target)
	assert.ErrorIs(t, err, boom)
}

func TestDeployOverwriteFlagsSkipPrompt(t *testing.T) {
	for _, flag := range []string{"--overwrite", "-o", "--yes", "-y"} {
		t.Run(flag, func(t *testing.T) {
			isolateEnv(t)
			stubPrompter(t, failPrompter{t: t})
			src, target := deployedTarget(t)

			_, _, err := runCLI(t, "--bundle", src, "deploy", target, flag)
			require.NoError(t, err)
			assert.NoFileExists(t, filepath.Join(target, bundle.DirName, "custom.txt"))
			assert.Equal(t, testutil.Snapshot(t, src), testutil.Snapshot(t, filepath.Join(target, bundle.DirName)))
		})
	}
}

func TestDeployInvalidTarget(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	file := filepath.Join(t.TempDir(), "file.txt")
	testutil.WriteFile(t, file, "x", 0o644)

	_, _, err := runCLI(t, "--bundle", src, "deploy", file)
	require.Error(t, err)
	assert.ErrorIs(t, err, deploy.ErrNotADirectory)
	assert.Contains(t, err.Error(), "invalid target:")

	_, _, err = runCLI(t, "--bundle", src, "deploy", filepath.Join(t.TempDir(), "a", "b"))
	assert.ErrorIs(t, err, deploy.ErrInvalidParent)
}

func TestDeployIncompleteBundle(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	require.NoError(t, os.RemoveAll(filepath.Join(src, "hooks")))

	_, _, err := runCLI(t, "--bundle", src, "deploy", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, deploy.ErrVerificationFailed)
	assert.NotContains(t, err.Error(), "failed to copy")
}

func TestDeployStrictFromEnv(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	testutil.WriteFile(t, filepath.Join(src, "settings.json"), "{not json", 0o644)

	_, _, err := runCLI(t, "--bundle", src, "deploy", t.TempDir())
	require.NoError(t, err)

	t.Setenv("CLAUDE_SETUP_STRICT", "true")
	_, _, err = runCLI(t, "--bundle", src, "deploy", t.TempDir())
	assert.ErrorIs(t, err, deploy.ErrVerificationFailed)
}

func TestDeployStrictFlag(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	testutil.WriteFile(t, filepath.Join(src, "settings.json"), "{not json", 0o644)

	_, _, err := runCLI(t, "--bundle", src, "deploy", "--strict", t.TempDir())
	assert.ErrorIs(t, err, deploy.ErrVerificationFailed)
}

func TestDeployCopyFailureIsWrapped(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	orig := deployBundle
	t.Cleanup(func() { deployBundle = orig })
	deployBundle = func(string, string, deploy.Options) (deploy.Result, error) {
		return deploy.Result{}, errors.New("disk full")
	}

	_, _, err := runCLI(t, "--bundle", src, "deploy", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, "failed to copy .claude/ folder: disk full", err.Error())
}

func TestDeployCountFallback(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	orig := countFiles
	t.Cleanup(func() { countFiles = orig })
	countFiles = func(string) (int, error) { return 0, errors.New("walk failed") }

	out, _, err := runCLI(t, "--bundle", src, "deploy", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "(4 files)")
}

func TestDeployMissingBundle(t *testing.T) {
	isolateEnv(t)
	_, _, err := runCLI(t, "--bundle", filepath.Join(t.TempDir(), "nope"), "deploy", t.TempDir())
	assert.ErrorIs(t, err, bundle.ErrNotFound)
}

func TestDeployRefusesBundleDirectoryAsTarget(t *testing.T) {
	isolateEnv(t)
	stubPrompter(t, failPrompter{t: t})
	src := testutil.WriteBundle(t, t.TempDir())
	installDir := filepath.Dir(src)
	exe := filepath.Join(installDir, "claude-setup")
	testutil.WriteFile(t, exe, "binary", 0o755)
	orig := executablePath
	t.Cleanup(func() { executablePath = orig })
	executablePath = func() (string, error) { return exe, nil }
	stubGetwd(t, installDir)
	before := testutil.Snapshot(t, src)

	_, _, err := runCLI(t, "--mode", "executable", "deploy", "-y")
	require.Error(t, err)
	assert.ErrorIs(t, err, deploy.ErrSourceOverlap)
	assert.NotContains(t, err.Error(), "failed to copy")
	assert.Equal(t, before, testutil.Snapshot(t, src))
}

func TestDeployRefusesTargetInsideBundle(t *testing.T) {
	isolateEnv(t)
	src := testutil.WriteBundle(t, t.TempDir())
	before := testutil.Snapshot(t, src)

	_, _, err := runCLI(t, "--bundle", src, "deploy", filepath.Join(src, "commands"))
	assert.ErrorIs(t, err, deploy.ErrSourceOverlap)
	assert.Equal(t, before, testutil.Snapshot(t, src))
}

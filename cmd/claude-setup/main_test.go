package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"claude-setup", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"claude-setup", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestMainNoArgsPrintsHelp(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer
	if err := execute([]string{"claude-setup"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	assert.Contains(t, out.String(), "deploy")
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"claude-setup", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"claude-setup", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"claude-setup"}, &out, &out, func(c int) { code = c })
	assert.Equal(t, 3, code)
	assert.Empty(t, out.String())
}

func TestRunMainWrappedSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.Join(errors.New("context"), &SilentExitError{Code: 2})
	}

	code := 0
	runMain([]string{"claude-setup"}, io.Discard, io.Discard, func(c int) { code = c })
	assert.Equal(t, 2, code)
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"claude-setup", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "v1.2.0", "unknown", "unknown"
	assert.Equal(t, "v1.2.0", versionString())

	Commit = "abc1234"
	assert.Equal(t, "v1.2.0 (commit abc1234)", versionString())

	BuildDate = "2026-10-01"
	assert.Equal(t, "v1.2.0 (commit abc1234, built 2026-10-01)", versionString())
}

func TestSilentExitErrorMessage(t *testing.T) {
	assert.Equal(t, "exit 4", (&SilentExitError{Code: 4}).Error())
}

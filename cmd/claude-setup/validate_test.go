package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/claude-setup/internal/testutil"
)

func TestValidateCommandValid(t *testing.T) {
	isolateEnv(t)
	target := t.TempDir()

	out, _, err := runCLI(t, "validate", target)
	require.NoError(t, err)
	assert.Equal(t, target+": valid target directory\n", out)
}

func TestValidateCommandInvalid(t *testing.T) {
	isolateEnv(t)
	file := filepath.Join(t.TempDir(), "file")
	testutil.WriteFile(t, file, "x", 0o644)
	missing := filepath.Join(t.TempDir(), "a", "b")

	tests := []struct {
		target string
		want   string
	}{
		{target: file, want: "target path exists but is not a directory"},
		{target: missing, want: "parent directory does not exist"},
	}
	for _, tt := range tests {
		out, _, err := runCLI(t, "validate", tt.target)
		var silent *SilentExitError
		require.True(t, errors.As(err, &silent), tt.target)
		assert.Equal(t, 1, silent.Code)
		assert.Contains(t, out, tt.want)
	}
}

func TestValidateCommandRequiresTarget(t *testing.T) {
	isolateEnv(t)
	_, _, err := runCLI(t, "validate")
	assert.Error(t, err)
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture contents written by WriteBundle.
const (
	CommandContent  = "# test command"
	SkillContent    = "---\nname: test-skill\ndescription: exercises the deployer\n---\n\n# test skill\n"
	HookContent     = "#!/bin/bash\necho test\n"
	SettingsContent = `{"test": true}`
)

// WriteBundle builds a complete synthetic bundle at dir/source/.claude and returns its path.
// It holds commands/test.md, skills/test-skill/SKILL.md, an executable hooks/test.sh, and
// settings.json.
func WriteBundle(t *testing.T, dir string) string {
	t.Helper()
	root := filepath.Join(dir, "source", ".claude")
	WriteFile(t, filepath.Join(root, "commands", "test.md"), CommandContent, 0o644)
	WriteFile(t, filepath.Join(root, "skills", "test-skill", "SKILL.md"), SkillContent, 0o644)
	WriteFile(t, filepath.Join(root, "hooks", "test.sh"), HookContent, 0o755)
	WriteFile(t, filepath.Join(root, "settings.json"), SettingsContent, 0o644)
	return root
}

// WriteFile writes content to path with perm, creating parent directories.
// The mode is applied with chmod so the result does not depend on the umask.
func WriteFile(t *testing.T, path string, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

// Mkdir creates dir and its parents.
func Mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Snapshot maps every file and directory under root (slash-separated, relative) to its
// contents and mode, so two trees can be compared for equality.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			out[rel+"/"] = info.Mode().Perm().String()
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[rel] = info.Mode().Perm().String() + " " + string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return out
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

// Package root discovers the project a deployment should land in.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/messages"
)

// homeDir locates the user's home, whose .claude/ holds user-level settings
// rather than a project deployment.
var homeDir = homedir.Dir

// FindProjectRoot returns the default deployment target for start. It walks up
// from start and stops at the first directory holding a .claude/ folder or a
// .git entry (directory or worktree file); .claude/ wins when both sit in the
// same directory. The home directory's .claude/ is not a project marker. When
// nothing matches, start itself is returned.
func FindProjectRoot(start string) (string, error) {
	startDir, err := absStart(start)
	if err != nil {
		return "", err
	}
	home := ""
	if dir, err := homeDir(); err == nil {
		home = filepath.Clean(dir)
	}

	dir := startDir
	for {
		if dir != home {
			found, err := hasDeployment(dir)
			if err != nil {
				return "", err
			}
			if found {
				return dir, nil
			}
		}
		found, err := hasGit(dir)
		if err != nil {
			return "", err
		}
		if found {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return startDir, nil
		}
		dir = parent
	}
}

// hasDeployment reports whether dir holds a .claude/ folder. A .claude entry
// that is not a directory is an error.
func hasDeployment(dir string) (bool, error) {
	path := filepath.Join(dir, bundle.DirName)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf(messages.RootPathNotDirFmt, path)
		}
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf(messages.RootCheckPathFmt, path, err)
	}
}

func hasGit(dir string) (bool, error) {
	path := filepath.Join(dir, ".git")
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() && !info.Mode().IsRegular() {
			return false, fmt.Errorf(messages.RootPathNotDirOrFileFmt, path)
		}
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf(messages.RootCheckPathFmt, path, err)
	}
}

func absStart(start string) (string, error) {
	if strings.TrimSpace(start) == "" {
		return "", errors.New(messages.RootStartPathRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf(messages.RootResolvePathFmt, start, err)
	}
	return dir, nil
}

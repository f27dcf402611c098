// Package deploy validates deployment targets and copies a bundle into them.
package deploy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/messages"
)

// targetParentPerm is used for missing parents of the target directory.
const targetParentPerm os.FileMode = 0o755

// Options controls a deployment.
type Options struct {
	// Overwrite authorizes deleting an existing deployment before copying.
	Overwrite bool
	// Strict adds component kind checks and a settings parse to verification.
	Strict bool
	// System defaults to RealSystem.
	System System
	// Logger receives debug tracing. The zero value discards.
	Logger zerolog.Logger
}

// Result describes a finished deployment.
type Result struct {
	// Path is the deployment root, <target>/.claude.
	Path    string
	Success bool
	Present []bundle.Component
	Missing []bundle.Component
	// Files is the number of regular files copied.
	Files int
}

// Deploy copies the bundle at source into <target>/.claude.
// An existing deployment is refused with AlreadyExists unless opts.Overwrite is
// set, in which case it is removed first. After the copy the required components
// are verified; a missing one yields VerificationFailed with Success false.
// Filesystem errors propagate immediately and may leave a partial copy behind.
func Deploy(source string, target string, opts Options) (Result, error) {
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	if strings.TrimSpace(source) == "" {
		return Result{}, errors.New(messages.DeploySourceRequired)
	}
	if strings.TrimSpace(target) == "" {
		return Result{}, errors.New(messages.DeployTargetRequired)
	}

	dest := bundle.DeployPath(target)
	result := Result{Path: dest}
	log := opts.Logger.With().Str("source", source).Str("destination", dest).Logger()

	if err := CheckOverlap(sys, source, target); err != nil {
		return result, err
	}

	exists, err := pathExists(sys, dest)
	if err != nil {
		return result, err
	}
	if exists {
		if !opts.Overwrite {
			return result, newError(AlreadyExists, dest, fmt.Errorf(messages.DeployAlreadyExistsFmt, target))
		}
		log.Debug().Msg("removing existing deployment")
		if err := sys.RemoveAll(dest); err != nil {
			return result, fmt.Errorf(messages.DeployFailedRemoveFmt, dest, err)
		}
	}
	if err := sys.MkdirAll(target, targetParentPerm); err != nil {
		return result, fmt.Errorf(messages.DeployFailedCreateDirFmt, target, err)
	}

	log.Debug().Msg("copying bundle")
	c := &copier{sys: sys, log: log}
	if err := c.copyTree(source, dest); err != nil {
		return result, err
	}
	result.Files = c.files
	log.Debug().Int("files", c.files).Int("dirs", c.dirs).Msg("copy finished")

	report, err := verify(sys, dest, opts.Strict)
	if err != nil {
		return result, err
	}
	result.Present = report.present
	result.Missing = report.missing
	if verr := report.err(dest); verr != nil {
		return result, verr
	}
	result.Success = true
	return result, nil
}

// Exists reports whether a deployment already occupies target.
func Exists(sys System, target string) (bool, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	return pathExists(sys, bundle.DeployPath(target))
}

func pathExists(sys System, path string) (bool, error) {
	_, err := sys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf(messages.DeployFailedStatFmt, path, err)
}

// CheckOverlap refuses a deployment whose root <target>/.claude equals or nests
// with the bundle at source. Paths are compared after resolving symlinks on their
// existing prefixes.
func CheckOverlap(sys System, source string, target string) error {
	if sys == nil {
		sys = RealSystem{}
	}
	dest := bundle.DeployPath(target)
	src, err := resolvePath(sys, source)
	if err != nil {
		return err
	}
	dst, err := resolvePath(sys, dest)
	if err != nil {
		return err
	}
	if within(dst, src) || within(src, dst) {
		return newError(SourceOverlap, dest, fmt.Errorf(messages.DeploySourceOverlapFmt, dest, source))
	}
	return nil
}

// resolvePath returns the absolute form of path with symlinks resolved on the
// longest prefix that exists.
func resolvePath(sys System, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf(messages.DeployResolvePathFmt, path, err)
	}
	resolved, err := sys.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.DeployResolvePathFmt, path, err)
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	resolvedParent, err := resolvePath(sys, parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}

// within reports whether path is root or lies below it.
func within(path string, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

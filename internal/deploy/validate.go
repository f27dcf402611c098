package deploy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// probePattern names the zero-byte file used to test write access.
const probePattern = ".write_test-*"

// Validate decides whether a bundle may be deployed under path.
// A path that does not exist yet is accepted when its parent is an existing directory.
// Write access is tested by creating and removing a probe file in the path, or in its
// parent when the path does not exist. A failure to remove the probe is ignored.
// The returned error is an *Error for the classified failures.
func Validate(sys System, path string) error {
	if sys == nil {
		sys = RealSystem{}
	}
	if strings.TrimSpace(path) == "" {
		return errors.New(messages.ValidateTargetRequired)
	}
	clean := filepath.Clean(path)

	writable := clean
	info, err := sys.Stat(clean)
	switch {
	case err == nil:
		if !info.IsDir() {
			return newError(NotADirectory, clean, fmt.Errorf(messages.ValidateTargetNotDirFmt, clean))
		}
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf(messages.ValidateStatFailedFmt, clean, err)
	default:
		parent := filepath.Dir(clean)
		parentInfo, parentErr := sys.Stat(parent)
		if parentErr != nil {
			if errors.Is(parentErr, os.ErrPermission) {
				return fmt.Errorf(messages.ValidateStatFailedFmt, parent, parentErr)
			}
			return newError(InvalidParent, clean, fmt.Errorf(messages.ValidateParentMissingFmt, parent))
		}
		if !parentInfo.IsDir() {
			return newError(InvalidParent, clean, fmt.Errorf(messages.ValidateParentNotDirFmt, parent))
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.ValidateStatFailedFmt, clean, err)
		}
		writable = parent
	}

	probe, err := sys.CreateTemp(writable, probePattern)
	if err != nil {
		return newError(NoWritePermission, writable, fmt.Errorf(messages.ValidateNoWritePermissionFmt, err))
	}
	name := probe.Name()
	_ = probe.Close()
	_ = sys.Remove(name)
	return nil
}

// ValidateTarget reports whether path is a valid deployment target, with a
// human-readable reason either way.
func ValidateTarget(sys System, path string) (bool, string) {
	if err := Validate(sys, path); err != nil {
		return false, err.Error()
	}
	return true, messages.ValidateTargetOK
}

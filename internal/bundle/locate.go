package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// Mode selects how the bundle shipped with the program is found.
type Mode string

const (
	// ModeExecutable resolves the bundle next to the running binary.
	ModeExecutable Mode = "executable"
	// ModeSource resolves the bundle at the root of the source checkout.
	ModeSource Mode = "source"
	// ModePath uses an explicitly configured bundle path.
	ModePath Mode = "path"
)

// ErrNotFound reports that no bundle exists where a locator looked.
var ErrNotFound = errors.New("bundle not found")

// ParseMode converts a config or flag value into a Mode. An empty value means detect.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return "", nil
	case ModeExecutable:
		return ModeExecutable, nil
	case ModeSource:
		return ModeSource, nil
	default:
		return "", fmt.Errorf(messages.BundleUnknownModeFmt, value)
	}
}

// Locator resolves the bundle root directory.
type Locator interface {
	Locate() (string, error)
	Mode() Mode
}

// ExecutableLocator finds the bundle beside the running executable, the layout
// used by packaged releases.
type ExecutableLocator struct {
	// Executable returns the path of the running binary. Defaults to os.Executable.
	Executable func() (string, error)
}

// Locate returns <dir of executable>/.claude.
func (l ExecutableLocator) Locate() (string, error) {
	executable := l.Executable
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf(messages.BundleResolveExecutableFmt, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return ensureDir(filepath.Join(filepath.Dir(exe), DirName))
}

// Mode reports ModeExecutable.
func (ExecutableLocator) Mode() Mode { return ModeExecutable }

// SourceLocator finds the bundle at the root of the repository checkout that
// contains Start, identified by its go.mod.
type SourceLocator struct {
	Start string
}

// Locate walks up from Start to the nearest go.mod and returns <that dir>/.claude.
func (l SourceLocator) Locate() (string, error) {
	dir, err := filepath.Abs(l.Start)
	if err != nil {
		return "", err
	}
	for {
		info, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil && !info.IsDir() {
			return ensureDir(filepath.Join(dir, DirName))
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf(messages.BundleSourceRootNotFoundFmt, l.Start)
		}
		dir = parent
	}
}

// Mode reports ModeSource.
func (SourceLocator) Mode() Mode { return ModeSource }

// PathLocator uses an explicit bundle path. A leading ~ expands to the home directory.
type PathLocator struct {
	Path string
}

// Locate expands and checks the configured path.
func (l PathLocator) Locate() (string, error) {
	expanded, err := homedir.Expand(l.Path)
	if err != nil {
		return "", fmt.Errorf(messages.BundleResolveHomeFmt, l.Path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return ensureDir(abs)
}

// Mode reports ModePath.
func (PathLocator) Mode() Mode { return ModePath }

// LocatorOptions selects a locator strategy.
type LocatorOptions struct {
	// Path is an explicit bundle path; when set it wins over Mode.
	Path string
	// Mode picks the strategy; empty means DetectMode on the running executable.
	Mode Mode
	// WorkingDir is where SourceLocator starts its search.
	WorkingDir string
	// Executable overrides os.Executable.
	Executable func() (string, error)
}

// NewLocator returns the locator selected by opts.
func NewLocator(opts LocatorOptions) (Locator, error) {
	if strings.TrimSpace(opts.Path) != "" {
		return PathLocator{Path: opts.Path}, nil
	}
	mode := opts.Mode
	if mode == "" {
		executable := opts.Executable
		if executable == nil {
			executable = os.Executable
		}
		exe, err := executable()
		if err != nil {
			return nil, fmt.Errorf(messages.BundleResolveExecutableFmt, err)
		}
		mode = DetectMode(exe)
	}
	switch mode {
	case ModeExecutable:
		return ExecutableLocator{Executable: opts.Executable}, nil
	case ModeSource:
		return SourceLocator{Start: opts.WorkingDir}, nil
	default:
		return nil, fmt.Errorf(messages.BundleUnknownModeFmt, mode)
	}
}

// DetectMode reports ModeSource for binaries built by `go run` or `go test`
// (they live in a go-build temp directory) and ModeExecutable otherwise.
func DetectMode(executable string) Mode {
	// Split on both separators so Windows paths are recognized on any host.
	parts := strings.FieldsFunc(executable, func(r rune) bool { return r == '/' || r == '\\' })
	for _, part := range parts {
		if strings.HasPrefix(part, "go-build") {
			return ModeSource
		}
	}
	return ModeExecutable
}

func ensureDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf(messages.BundleNotFoundFmt, ErrNotFound, path)
		}
		return "", fmt.Errorf(messages.BundleFailedStatFmt, path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.BundleNotDirFmt, path)
	}
	return path, nil
}

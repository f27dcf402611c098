package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// treeVisitor receives the nodes of a bundle tree. rel is relative to the walk
// root ("." for the root itself) and uses OS separators. info always describes
// the symlink target, never the link.
type treeVisitor struct {
	enterDir func(rel string, info os.FileInfo) error
	leaveDir func(rel string, info os.FileInfo) error
	file     func(rel string, abs string, info os.FileInfo) error
}

// walkTree visits root depth-first in filename order, following symlinks.
// A symlink that points back at one of its ancestors is an error, as is any
// node that is neither a directory nor a regular file.
func walkTree(sys System, root string, v treeVisitor) error {
	info, err := sys.Stat(root)
	if err != nil {
		return fmt.Errorf(messages.DeployFailedStatFmt, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.DeployComponentKindFmt, root, "directory")
	}
	return walkDir(sys, root, ".", info, v, map[string]bool{})
}

func walkDir(sys System, abs string, rel string, info os.FileInfo, v treeVisitor, active map[string]bool) error {
	real, err := sys.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf(messages.DeployFailedResolveLinkFmt, abs, err)
	}
	if active[real] {
		return fmt.Errorf(messages.DeploySymlinkLoopFmt, abs)
	}
	active[real] = true
	defer delete(active, real)

	if v.enterDir != nil {
		if err := v.enterDir(rel, info); err != nil {
			return err
		}
	}
	entries, err := sys.ReadDir(abs)
	if err != nil {
		return fmt.Errorf(messages.DeployFailedOpenFmt, abs, err)
	}
	for _, entry := range entries {
		childAbs := filepath.Join(abs, entry.Name())
		childRel := filepath.Join(rel, entry.Name())
		childInfo, err := sys.Lstat(childAbs)
		if err != nil {
			return fmt.Errorf(messages.DeployFailedStatFmt, childAbs, err)
		}
		if childInfo.Mode()&os.ModeSymlink != 0 {
			childInfo, err = sys.Stat(childAbs)
			if err != nil {
				return fmt.Errorf(messages.DeployFailedResolveLinkFmt, childAbs, err)
			}
		}
		switch {
		case childInfo.IsDir():
			if err := walkDir(sys, childAbs, childRel, childInfo, v, active); err != nil {
				return err
			}
		case childInfo.Mode().IsRegular():
			if v.file != nil {
				if err := v.file(childRel, childAbs, childInfo); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf(messages.DeployUnsupportedFileFmt, childAbs, childInfo.Mode().Type())
		}
	}
	if v.leaveDir != nil {
		return v.leaveDir(rel, info)
	}
	return nil
}

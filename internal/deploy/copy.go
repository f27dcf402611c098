package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// workingDirPerm keeps freshly created directories writable until their
// contents are in place; the source mode is applied afterwards.
const workingDirPerm os.FileMode = 0o700

// copier copies a bundle tree, dereferencing symlinks and preserving
// permission bits and modification times.
type copier struct {
	sys   System
	log   zerolog.Logger
	files int
	dirs  int
}

func (c *copier) copyTree(src string, dst string) error {
	return walkTree(c.sys, src, treeVisitor{
		enterDir: func(rel string, _ os.FileInfo) error {
			path := filepath.Join(dst, rel)
			if err := c.sys.MkdirAll(path, workingDirPerm); err != nil {
				return fmt.Errorf(messages.DeployFailedCreateDirFmt, path, err)
			}
			return nil
		},
		leaveDir: func(rel string, info os.FileInfo) error {
			c.dirs++
			return c.applyMeta(filepath.Join(dst, rel), info)
		},
		file: func(rel string, abs string, info os.FileInfo) error {
			target := filepath.Join(dst, rel)
			if err := c.copyFile(abs, target, info); err != nil {
				return err
			}
			c.files++
			c.log.Debug().Str("file", filepath.ToSlash(rel)).Stringer("mode", info.Mode().Perm()).Msg("copied")
			return nil
		},
	})
}

func (c *copier) copyFile(src string, dst string, info os.FileInfo) error {
	in, err := c.sys.Open(src)
	if err != nil {
		return fmt.Errorf(messages.DeployFailedOpenFmt, src, err)
	}
	defer func() { _ = in.Close() }()

	if err := c.sys.CopyFileAtomic(dst, in, info.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.DeployFailedCopyFmt, src, dst, err)
	}
	mtime := info.ModTime()
	if err := c.sys.Chtimes(dst, mtime, mtime); err != nil {
		return fmt.Errorf(messages.DeployFailedChtimesFmt, dst, err)
	}
	return nil
}

func (c *copier) applyMeta(path string, info os.FileInfo) error {
	if err := c.sys.Chmod(path, info.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.DeployFailedChmodFmt, path, err)
	}
	mtime := info.ModTime()
	if err := c.sys.Chtimes(path, mtime, mtime); err != nil {
		return fmt.Errorf(messages.DeployFailedChtimesFmt, path, err)
	}
	return nil
}

//go:build !windows

package fsutil

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/conn-castle/claude-setup/internal/messages"
)

func copyFileAtomic(filename string, src io.Reader, perm os.FileMode) error {
	pending, err := renameio.NewPendingFile(filename, renameio.WithStaticPermissions(perm))
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	// No-op once the file has been committed.
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.Copy(pending, src); err != nil {
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	// fsync + rename.
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	return nil
}

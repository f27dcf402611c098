//go:build windows

package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// renameio does not build on Windows, so this falls back to temp file + rename.
func copyFileAtomic(filename string, src io.Reader, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+"-*.tmp")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, filename, err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	committed = true
	return nil
}

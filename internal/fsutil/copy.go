// Package fsutil provides durable file writes for the bundle copy.
package fsutil

import (
	"io"
	"os"
)

// CopyFileAtomic streams src into filename through a pending file in the same
// directory and renames it into place. The final file has exactly perm,
// regardless of the process umask. The pending file is removed when the copy
// does not complete.
func CopyFileAtomic(filename string, src io.Reader, perm os.FileMode) error {
	return copyFileAtomic(filename, src, perm)
}

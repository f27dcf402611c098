package bundle

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/claude-setup/internal/messages"
)

// CountFiles returns the number of regular files under root.
func CountFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf(messages.BundleCountFailedFmt, root, err)
	}
	return count, nil
}

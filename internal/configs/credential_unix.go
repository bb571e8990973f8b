//go:build !windows

package configs

import (
	"fmt"
	"os"
)

// restrictToOwner sets the credential file mode to owner read/write only,
// clearing any group or other bits regardless of the file's prior mode.
func restrictToOwner(path string) error {
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to restrict permissions on %s: %w", path, err)
	}
	return nil
}

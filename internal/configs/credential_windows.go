//go:build windows

package configs

// restrictToOwner is a no-op on Windows, which has no POSIX permission bits
// to restrict.
func restrictToOwner(path string) error {
	return nil
}

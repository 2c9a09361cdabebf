//go:build unix

package fileaccess

import (
	"os"

	"golang.org/x/sys/unix"
)

func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func canWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// umask reads the process umask. There is no way to read it without
// setting it, so it is put straight back.
func umask() os.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return os.FileMode(mask)
}

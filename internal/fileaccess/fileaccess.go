// Package fileaccess answers whether a path may be read from or written to
// before any decoding or encoding work is attempted.
package fileaccess

import (
	"os"
	"path/filepath"
)

type Checker interface {
	IsReadable(path string) bool
	IsWritable(path string) bool
}

// OS checks permissions against the local file system.
type OS struct{}

var _ Checker = OS{}

func (OS) IsReadable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return canRead(path)
}

// IsWritable reports whether a file could be written at path. An existing
// file must itself be writable, otherwise its parent directory must be.
// Directories are never writable targets.
func (OS) IsWritable(path string) bool {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir() && canWrite(path)
	case os.IsNotExist(err):
		dir := filepath.Dir(path)
		parent, err := os.Stat(dir)
		if err != nil || !parent.IsDir() {
			return false
		}
		return canWrite(dir)
	default:
		return false
	}
}

// Mode is the permission a file written to path should end up with: the
// current permission of an existing file, otherwise what os.Create would
// give a new one.
func Mode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o666 &^ umask()
}

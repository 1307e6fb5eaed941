//go:build linux

package fsutil

import "golang.org/x/sys/unix"

// Writable reports whether the effective user can write to path. It uses
// faccessat(2) with AT_EACCESS so the answer reflects the effective uid even
// when real and effective ids differ.
func Writable(path string) bool {
	return unix.Faccessat(unix.AT_FDCWD, path, unix.W_OK, unix.AT_EACCESS) == nil
}

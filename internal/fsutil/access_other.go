//go:build !linux

package fsutil

import "os"

// Writable reports whether the effective user can write to path. Without
// faccessat(2) the check probes directories by creating and removing a
// scratch file, and files by opening them for writing.
func Writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if info.IsDir() {
		f, err := os.CreateTemp(path, ".unitctl-probe-")
		if err != nil {
			return false
		}
		name := f.Name()
		f.Close()
		os.Remove(name)
		return true
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

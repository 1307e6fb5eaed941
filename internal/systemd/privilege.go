package systemd

import (
	"errors"
	"os"
)

// ErrNotRoot is returned when an operation needs root privileges.
var ErrNotRoot = errors.New("systemd: operation requires root privileges")

// realRootChecker implements RootChecker using the effective uid.
type realRootChecker struct{}

// NewRootChecker returns a RootChecker backed by the process's effective uid,
// so a setuid or sudo invocation counts as root.
func NewRootChecker() RootChecker {
	return &realRootChecker{}
}

func (c *realRootChecker) IsRoot() bool {
	return os.Geteuid() == 0
}

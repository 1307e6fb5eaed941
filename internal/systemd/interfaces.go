package systemd

import (
	"context"
	"io"
)

// Controller abstracts service-manager interaction for testability. Queries
// map unit state to booleans and never fail; mutations return errors.
type Controller interface {
	// Available returns true if systemctl is present on PATH.
	Available() bool

	// IsActive returns true if the named unit is currently running.
	IsActive(unit string, scope Scope) bool

	// IsEnabled returns true if the named unit is enabled to start on boot.
	IsEnabled(unit string, scope Scope) bool

	// Start starts the named unit.
	Start(unit string, scope Scope) error

	// Stop stops the named unit.
	Stop(unit string, scope Scope) error

	// Restart restarts the named unit.
	Restart(unit string, scope Scope) error

	// Enable enables the named unit to start on boot.
	Enable(unit string, scope Scope) error

	// Disable disables the named unit from starting on boot.
	Disable(unit string, scope Scope) error

	// DaemonReload reloads systemd so unit file changes take effect.
	DaemonReload(scope Scope) error

	// FollowLogs streams the unit's journal to out until ctx is cancelled
	// or the stream ends.
	FollowLogs(ctx context.Context, unit string, scope Scope, out, errOut io.Writer) error
}

// RootChecker abstracts privilege checking for testability.
type RootChecker interface {
	// IsRoot returns true if the process runs with an effective uid of zero.
	IsRoot() bool
}

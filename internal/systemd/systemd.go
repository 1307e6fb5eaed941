// Package systemd drives systemctl and journalctl for the system and
// per-user service-manager instances.
package systemd

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Scope selects which systemd instance a command addresses.
type Scope int

const (
	// ScopeSystem targets the system instance.
	ScopeSystem Scope = iota
	// ScopeUser targets the per-user instance (systemctl --user).
	ScopeUser
)

// String returns "system" or "user".
func (s Scope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "system"
}

// scopedArgs prepends --user as the first argument for user-scoped calls.
func scopedArgs(scope Scope, args []string) []string {
	if scope == ScopeUser {
		return append([]string{"--user"}, args...)
	}
	return args
}

// CommandError reports a failed systemctl or journalctl invocation, carrying
// the command's combined output when there was any.
type CommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("systemd: %s %s: %s: %v", e.Command, strings.Join(e.Args, " "), e.Output, e.Err)
	}
	return fmt.Sprintf("systemd: %s %s: %v", e.Command, strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Client implements Controller by invoking the real systemctl binary.
type Client struct {
	logger *slog.Logger
}

// NewClient returns a Client that shells out to systemctl.
func NewClient(logger *slog.Logger) *Client {
	return &Client{logger: logger.With("component", "systemd")}
}

// Available returns true if systemctl is present on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

// IsActive returns true if the named unit is currently running.
func (c *Client) IsActive(unit string, scope Scope) bool {
	return c.query(scope, "is-active", "--quiet", unit)
}

// IsEnabled returns true if the named unit is enabled to start on boot.
func (c *Client) IsEnabled(unit string, scope Scope) bool {
	return c.query(scope, "is-enabled", "--quiet", unit)
}

// Start starts the named unit.
func (c *Client) Start(unit string, scope Scope) error {
	return c.run(scope, "start", unit)
}

// Stop stops the named unit.
func (c *Client) Stop(unit string, scope Scope) error {
	return c.run(scope, "stop", unit)
}

// Restart restarts the named unit.
func (c *Client) Restart(unit string, scope Scope) error {
	return c.run(scope, "restart", unit)
}

// Enable enables the named unit to start on boot.
func (c *Client) Enable(unit string, scope Scope) error {
	return c.run(scope, "enable", unit)
}

// Disable disables the named unit from starting on boot.
func (c *Client) Disable(unit string, scope Scope) error {
	return c.run(scope, "disable", unit)
}

// DaemonReload reloads systemd so unit file changes take effect.
func (c *Client) DaemonReload(scope Scope) error {
	return c.run(scope, "daemon-reload")
}

// query maps the command's exit status to a boolean. An unreachable or
// failing systemctl reads as false, never as an error.
func (c *Client) query(scope Scope, args ...string) bool {
	argv := scopedArgs(scope, args)
	err := exec.Command("systemctl", argv...).Run()
	c.logger.Debug("systemctl query", "args", argv, "ok", err == nil)
	return err == nil
}

func (c *Client) run(scope Scope, args ...string) error {
	argv := scopedArgs(scope, args)
	c.logger.Debug("systemctl", "args", argv)
	output, err := exec.Command("systemctl", argv...).CombinedOutput()
	if err != nil {
		return &CommandError{
			Command: "systemctl",
			Args:    argv,
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		}
	}
	return nil
}

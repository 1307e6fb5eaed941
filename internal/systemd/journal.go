package systemd

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// followWaitDelay is the grace period for journalctl to exit after context
// cancellation before it is forcibly killed.
const followWaitDelay = 500 * time.Millisecond

// FollowLogs streams the unit's journal (journalctl -u <unit> -f) to out
// until ctx is cancelled or journalctl exits. Caller-initiated cancellation
// is a clean stop, not an error.
func (c *Client) FollowLogs(ctx context.Context, unit string, scope Scope, out, errOut io.Writer) error {
	if _, err := exec.LookPath("journalctl"); err != nil {
		return fmt.Errorf("systemd: journalctl not found: %w", err)
	}

	args := scopedArgs(scope, []string{"-u", unit, "-f"})
	cmd := exec.CommandContext(ctx, "journalctl", args...)
	cmd.Stdout = out
	cmd.Stderr = errOut
	cmd.WaitDelay = followWaitDelay

	c.logger.Debug("following journal", "unit", unit, "scope", scope.String())

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return &CommandError{Command: "journalctl", Args: args, Err: err}
	}
	return nil
}

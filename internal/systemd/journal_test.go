package systemd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestFollowLogs_WritesOutput(t *testing.T) {
	installFakeBinary(t, "journalctl", `echo "journal line"; echo "stderr line" >&2`)
	c := NewClient(testLogger())

	var out, errOut bytes.Buffer
	err := c.FollowLogs(context.Background(), "webapp.service", ScopeSystem, &out, &errOut)
	if err != nil {
		t.Fatalf("FollowLogs() = %v", err)
	}
	if !strings.Contains(out.String(), "journal line") {
		t.Errorf("stdout = %q, want the journal line", out.String())
	}
	if !strings.Contains(errOut.String(), "stderr line") {
		t.Errorf("stderr = %q, want the stderr line", errOut.String())
	}
}

func TestFollowLogs_ScopedArgs(t *testing.T) {
	dir := installFakeBinary(t, "journalctl", recordArgsScript)
	c := NewClient(testLogger())

	if err := c.FollowLogs(context.Background(), "webapp.service", ScopeUser, io.Discard, io.Discard); err != nil {
		t.Fatalf("FollowLogs() = %v", err)
	}
	if got, want := readRecordedArgs(t, dir), "--user -u webapp.service -f"; got != want {
		t.Errorf("journalctl args = %q, want %q", got, want)
	}
}

func TestFollowLogs_CancelledContextIsClean(t *testing.T) {
	installFakeBinary(t, "journalctl", "sleep 10")
	c := NewClient(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(100*time.Millisecond, cancel)
	defer timer.Stop()
	defer cancel()

	err := c.FollowLogs(ctx, "webapp.service", ScopeSystem, io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("FollowLogs() = %v, want nil when the caller cancels", err)
	}
}

func TestFollowLogs_NonZeroExit(t *testing.T) {
	installFakeBinary(t, "journalctl", "echo no entries >&2; exit 1")
	c := NewClient(testLogger())

	err := c.FollowLogs(context.Background(), "webapp.service", ScopeSystem, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("FollowLogs() = nil, want error for non-zero exit")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error = %T, want *CommandError", err)
	}
	if cmdErr.Command != "journalctl" {
		t.Errorf("Command = %q, want journalctl", cmdErr.Command)
	}
}

func TestFollowLogs_JournalctlMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := NewClient(testLogger())

	err := c.FollowLogs(context.Background(), "webapp.service", ScopeSystem, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("FollowLogs() = nil, want error when journalctl is missing")
	}
	if !strings.Contains(err.Error(), "journalctl not found") {
		t.Errorf("error = %q, want a journalctl not found message", err)
	}
}

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{})

	_ = rootCmd.Execute()

	output := buf.String()
	if !strings.Contains(output, "unitctl") {
		t.Errorf("help output should contain 'unitctl', got: %s", output)
	}
	for _, sub := range []string{"status", "install", "uninstall", "logs", "verify", "enable", "disable", "restart", "init", "doctor"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help output should list %q, got: %s", sub, output)
		}
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	// Parsing --help leaves the flag set on the shared rootCmd; reset it so
	// later Execute calls in this package are not hijacked by help.
	t.Cleanup(func() {
		if f := rootCmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	_ = rootCmd.Execute()

	output := buf.String()
	for _, flag := range []string{"--config", "--fleet-root", "--log-level", "--force", "--dry-run"} {
		if !strings.Contains(output, flag) {
			t.Errorf("help output should list %q, got: %s", flag, output)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2025-01-01")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--version"})

	_ = rootCmd.Execute()

	output := buf.String()
	if !strings.Contains(output, "1.2.3") {
		t.Errorf("version output should contain '1.2.3', got: %s", output)
	}
	if !strings.Contains(output, "abc123") {
		t.Errorf("version output should contain 'abc123', got: %s", output)
	}
	if !strings.Contains(output, "2025-01-01") {
		t.Errorf("version output should contain '2025-01-01', got: %s", output)
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"nonexistent"})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("unknown subcommand should fail")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should name the unknown subcommand, got: %v", err)
	}
}

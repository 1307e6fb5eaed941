// Package main is the entry point for the unitctl binary.
package main

import (
	"os"

	"github.com/unitfleet/unitctl/cmd/unitctl/cmd"
	"github.com/unitfleet/unitctl/internal/console"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		console.NewPrinter(os.Stderr).Errorf("%v", err)
		os.Exit(1)
	}
}

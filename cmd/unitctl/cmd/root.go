// Package cmd implements the unitctl CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unitfleet/unitctl/internal/fleet"
)

var (
	cfgFile   string
	fleetRoot string
	logLevel  string
	force     bool
	dryRun    bool
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("unitctl version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "unitctl",
	Short: "unitctl deploys directory-defined applications onto systemd",
	Long: "unitctl manages applications packaged as directories of systemd unit files\n" +
		"and related assets. It discovers applications under a fleet root, reports\n" +
		"their installation state, copies their files into the configured systemd\n" +
		"directory, and drives the units through start, stop, enable, and disable.",
	// No Run function, so bare "unitctl" prints help. Errors are rendered by
	// main through the console printer, so cobra stays quiet.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", fleet.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&fleetRoot, "fleet-root", "", "directory containing application directories (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, or error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "overwrite existing files and skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report planned actions without changing anything")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("unitctl version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

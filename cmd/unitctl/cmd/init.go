package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	initTargetDir string
	initUseUser   bool
)

var initCmd = &cobra.Command{
	Use:   "init <app>",
	Short: "Scaffold a new application directory",
	Long: "Create a new application directory under the fleet root with a starter\n" +
		"config.toml and a unit file skeleton. Runs without root since it only\n" +
		"writes into the fleet root.",
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initTargetDir, "target-dir", "", "install location written to config.toml (defaults to the systemd unit directory for the chosen scope)")
	initCmd.Flags().BoolVar(&initUseUser, "user", false, "target the per-user systemd instance")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	m, err := newManager(false)
	if err != nil {
		return fmt.Errorf("unitctl init: %w", err)
	}
	if err := m.Init(args[0], initTargetDir, initUseUser); err != nil {
		return fmt.Errorf("unitctl init: %w", err)
	}
	return nil
}

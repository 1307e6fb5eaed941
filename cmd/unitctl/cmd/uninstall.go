package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [app]",
	Short: "Stop one or all applications and remove their installed files",
	Long: "Stop an application's unit, remove its installed files, and reload systemd.\n" +
		"Prompts for confirmation unless --force is given. Without an argument every\n" +
		"application under the fleet root is uninstalled in turn.",
	Args: cobra.MaximumNArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl uninstall: %w", err)
	}
	if err := m.Uninstall(optionalName(args)); err != nil {
		return fmt.Errorf("unitctl uninstall: %w", err)
	}
	return nil
}

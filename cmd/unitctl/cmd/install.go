package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [app]",
	Short: "Install one or all applications and start their units",
	Long: "Copy an application's files into its configured install location, reload\n" +
		"systemd, and start the unit. Without an argument every application under\n" +
		"the fleet root is installed in turn.",
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl install: %w", err)
	}
	if err := m.Install(optionalName(args)); err != nil {
		return fmt.Errorf("unitctl install: %w", err)
	}
	return nil
}

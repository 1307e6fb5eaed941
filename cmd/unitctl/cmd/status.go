package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [app]",
	Short: "Show the installation state of one or all applications",
	Long: "Report each application as Running, Stopped, Installed, or Not Installed,\n" +
		"derived from the presence of its files and the state of its unit.",
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl status: %w", err)
	}
	if err := m.Status(optionalName(args)); err != nil {
		return fmt.Errorf("unitctl status: %w", err)
	}
	return nil
}

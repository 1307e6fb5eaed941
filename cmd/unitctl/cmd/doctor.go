package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the deployment environment",
	Long: "Check that systemctl and journalctl are on PATH, that unitctl has the\n" +
		"privileges it needs, and that every application's config parses and its\n" +
		"install location is writable.",
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	m, err := newManager(false)
	if err != nil {
		return fmt.Errorf("unitctl doctor: %w", err)
	}
	if err := m.Doctor(); err != nil {
		return fmt.Errorf("unitctl doctor: %w", err)
	}
	return nil
}

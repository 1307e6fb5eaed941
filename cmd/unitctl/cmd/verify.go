package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [app]",
	Short: "Check installed files against their sources",
	Long: "Compare every installed file's content digest against the application\n" +
		"directory and report files that are missing or were modified in place.",
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl verify: %w", err)
	}
	if err := m.Verify(optionalName(args)); err != nil {
		return fmt.Errorf("unitctl verify: %w", err)
	}
	return nil
}

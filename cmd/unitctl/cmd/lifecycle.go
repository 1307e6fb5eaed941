package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <app>",
	Short: "Enable an application's unit to start on boot",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnable,
}

var disableCmd = &cobra.Command{
	Use:   "disable <app>",
	Short: "Stop an application's unit from starting on boot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisable,
}

var restartCmd = &cobra.Command{
	Use:   "restart <app>",
	Short: "Restart an application's unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestart,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(restartCmd)
}

func runEnable(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl enable: %w", err)
	}
	if err := m.Enable(args[0]); err != nil {
		return fmt.Errorf("unitctl enable: %w", err)
	}
	return nil
}

func runDisable(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl disable: %w", err)
	}
	if err := m.Disable(args[0]); err != nil {
		return fmt.Errorf("unitctl disable: %w", err)
	}
	return nil
}

func runRestart(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl restart: %w", err)
	}
	if err := m.Restart(args[0]); err != nil {
		return fmt.Errorf("unitctl restart: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs <app>",
	Short: "Follow an application's journal",
	Long:  "Stream the application's unit journal until interrupted with Ctrl+C.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

func runLogs(_ *cobra.Command, args []string) error {
	m, err := newManager(true)
	if err != nil {
		return fmt.Errorf("unitctl logs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := m.Logs(ctx, args[0], os.Stdout, os.Stderr); err != nil {
		return fmt.Errorf("unitctl logs: %w", err)
	}
	return nil
}

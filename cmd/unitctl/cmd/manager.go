package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unitfleet/unitctl/internal/console"
	"github.com/unitfleet/unitctl/internal/fleet"
	"github.com/unitfleet/unitctl/internal/systemd"
)

// loadToolConfig reads the tool configuration. A missing file at the
// default path falls back to defaults; a missing file named via --config is
// an error, since the operator asked for that file specifically.
func loadToolConfig() (*fleet.Config, error) {
	cfg, err := fleet.ParseConfig(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
			def := &fleet.Config{}
			def.ApplyDefaults()
			return def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// resolveFleetRoot picks the fleet root: the --fleet-root flag, then the
// config file, then the directory holding the unitctl executable with
// symlinks resolved.
func resolveFleetRoot(cfg *fleet.Config) (string, error) {
	if fleetRoot != "" {
		return fleetRoot, nil
	}
	if cfg.FleetRoot != "" {
		return cfg.FleetRoot, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// newManager wires the fleet manager for one command invocation. Commands
// that deploy or talk to the service manager pass requireRoot and are
// refused up front when the effective uid is not zero.
func newManager(requireRoot bool) (*fleet.Manager, error) {
	cfg, err := loadToolConfig()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	checker := systemd.NewRootChecker()
	if requireRoot && !checker.IsRoot() {
		return nil, systemd.ErrNotRoot
	}

	root, err := resolveFleetRoot(cfg)
	if err != nil {
		return nil, err
	}

	logger := console.NewLogger(cfg.LogLevel)
	printer := console.NewPrinter(os.Stdout)
	opts := fleet.Options{Force: force, DryRun: dryRun}

	return fleet.NewManager(root, opts, systemd.NewClient(logger), checker, console.NewPrompt(), printer, logger), nil
}

// optionalName returns the single optional positional argument.
func optionalName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

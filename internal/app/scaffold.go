package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unitfleet/unitctl/internal/fsutil"
)

// DefaultSystemInstallDir is the install location written into scaffolded
// system-scope configurations.
const DefaultSystemInstallDir = "/etc/systemd/system"

// userInstallDirRel is the per-user unit directory relative to $HOME.
const userInstallDirRel = ".config/systemd/user"

// Scaffold creates a new application directory under root with a starter
// config.toml and unit file, both written atomically. It refuses to touch
// an existing directory and returns the path it created.
func Scaffold(root, name, installLocation string, useUser bool) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	dir := filepath.Join(root, name)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("app: scaffold: %s already exists", dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("app: scaffold: stat %s: %w", dir, err)
	}

	if installLocation == "" {
		if useUser {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("app: scaffold: resolve home directory: %w", err)
			}
			installLocation = filepath.Join(home, userInstallDirRel)
		} else {
			installLocation = DefaultSystemInstallDir
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("app: scaffold: create %s: %w", dir, err)
	}

	if err := fsutil.WriteFileAtomic(dir, ConfigFileName, []byte(GenerateConfig(installLocation, useUser)), 0o644); err != nil {
		return "", fmt.Errorf("app: scaffold: write %s: %w", ConfigFileName, err)
	}

	unitName := name + ".service"
	if err := fsutil.WriteFileAtomic(dir, unitName, []byte(GenerateUnitFile(name, useUser)), 0o644); err != nil {
		return "", fmt.Errorf("app: scaffold: write %s: %w", unitName, err)
	}

	return dir, nil
}

// GenerateConfig produces a starter config.toml.
func GenerateConfig(installLocation string, useUser bool) string {
	return fmt.Sprintf(`# install_location is the directory manifest files are copied into.
# use_user targets the per-user systemd instance instead of the system one.

[systemd]
install_location = %q
use_user = %t
`, installLocation, useUser)
}

// GenerateUnitFile produces a minimal service unit skeleton for the
// application.
func GenerateUnitFile(name string, useUser bool) string {
	wantedBy := "multi-user.target"
	if useUser {
		wantedBy = "default.target"
	}

	return fmt.Sprintf(`[Unit]
Description=%s service
After=network-online.target

[Service]
Type=simple
ExecStart=/usr/local/bin/%s
Restart=on-failure
RestartSec=5s

[Install]
WantedBy=%s
`, name, name, wantedBy)
}

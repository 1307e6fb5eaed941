// Package app implements the application lifecycle. An application is a
// named directory of systemd unit files and related assets plus a
// config.toml describing where those files install; the package discovers
// the deployable manifest, derives the installation state from the
// filesystem and the service manager, and drives the transitions between
// states.
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/unitfleet/unitctl/internal/console"
	"github.com/unitfleet/unitctl/internal/systemd"
)

// Status is the derived installation state of an application. It is
// computed fresh on every call and never cached.
type Status int

const (
	// StatusNotInstalled means at least one manifest file is absent from
	// the target directory.
	StatusNotInstalled Status = iota
	// StatusInstalled means every file is present but the unit is neither
	// active nor enabled.
	StatusInstalled
	// StatusStopped means every file is present and the unit is enabled
	// but not active.
	StatusStopped
	// StatusRunning means every file is present and the unit is active.
	StatusRunning
)

// String renders the status for humans.
func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "Installed"
	case StatusStopped:
		return "Stopped"
	case StatusRunning:
		return "Running"
	default:
		return "Not Installed"
	}
}

// Confirmer asks the operator a yes/no question before a destructive step.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// App is one deployable application rooted under the fleet directory.
type App struct {
	// Name is the application's directory name and unit base name.
	Name string

	sourceDir string
	targetDir string
	scope     systemd.Scope

	ctrl    systemd.Controller
	confirm Confirmer
	printer *console.Printer
	logger  *slog.Logger
}

// New constructs the application rooted at <root>/<name> and reads its
// config.toml. A missing or invalid config is a construction error.
func New(root, name string, ctrl systemd.Controller, confirm Confirmer, printer *console.Printer, logger *slog.Logger) (*App, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	sourceDir := filepath.Join(root, name)
	cfg, err := LoadConfig(filepath.Join(sourceDir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	return &App{
		Name:      name,
		sourceDir: sourceDir,
		targetDir: cfg.Systemd.InstallLocation,
		scope:     cfg.Scope(),
		ctrl:      ctrl,
		confirm:   confirm,
		printer:   printer,
		logger:    logger.With("component", "app", "app", name),
	}, nil
}

// validateName rejects names that would escape the fleet root.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("app: invalid application name %q", name)
	}
	return nil
}

// Unit returns the application's systemd unit name.
func (a *App) Unit() string { return a.Name + ".service" }

// SourceDir returns the directory the manifest is discovered from.
func (a *App) SourceDir() string { return a.sourceDir }

// TargetDir returns the directory manifest files install into.
func (a *App) TargetDir() string { return a.targetDir }

// Scope returns the service-manager scope the application's unit runs
// under.
func (a *App) Scope() systemd.Scope { return a.scope }

// Manifest returns the deployable files under the source directory as
// slash-separated paths relative to it, in lexical walk order. Directories
// are structure, not content, and config.toml is tool metadata; both are
// excluded.
func (a *App) Manifest() ([]string, error) {
	var files []string
	err := filepath.WalkDir(a.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == ConfigFileName {
			return nil
		}
		rel, err := filepath.Rel(a.sourceDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, &ManifestError{Dir: a.sourceDir, Err: err}
	}
	return files, nil
}

// sourcePath maps a manifest entry to the file it is copied from.
func (a *App) sourcePath(rel string) string {
	return filepath.Join(a.sourceDir, filepath.FromSlash(rel))
}

// targetPath maps a manifest entry to its installed location.
func (a *App) targetPath(rel string) string {
	return filepath.Join(a.targetDir, filepath.FromSlash(rel))
}

// filesInstalled reports whether every manifest entry exists under the
// target directory. An empty manifest is vacuously installed.
func (a *App) filesInstalled(manifest []string) bool {
	for _, rel := range manifest {
		if _, err := os.Stat(a.targetPath(rel)); err != nil {
			return false
		}
	}
	return true
}

// Status derives the application's installation state. File presence is
// checked first and a miss short-circuits to Not Installed without touching
// the service manager; an active unit outranks a merely enabled one.
func (a *App) Status() (Status, error) {
	manifest, err := a.Manifest()
	if err != nil {
		return StatusNotInstalled, err
	}
	if !a.filesInstalled(manifest) {
		return StatusNotInstalled, nil
	}
	if a.ctrl.IsActive(a.Unit(), a.scope) {
		return StatusRunning, nil
	}
	if a.ctrl.IsEnabled(a.Unit(), a.scope) {
		return StatusStopped, nil
	}
	return StatusInstalled, nil
}

// Logs follows the unit's journal, writing entries to out until ctx is
// cancelled.
func (a *App) Logs(ctx context.Context, out, errOut io.Writer) error {
	return a.ctrl.FollowLogs(ctx, a.Unit(), a.scope, out, errOut)
}

// Enable marks the unit to start on boot.
func (a *App) Enable() error { return a.ctrl.Enable(a.Unit(), a.scope) }

// Disable unmarks the unit from starting on boot.
func (a *App) Disable() error { return a.ctrl.Disable(a.Unit(), a.scope) }

// Restart restarts the unit.
func (a *App) Restart() error { return a.ctrl.Restart(a.Unit(), a.scope) }

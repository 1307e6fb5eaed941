// Package fleet discovers the applications under a root directory and fans
// lifecycle operations out across them, one at a time, stopping at the
// first failure.
package fleet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/unitfleet/unitctl/internal/app"
	"github.com/unitfleet/unitctl/internal/console"
	"github.com/unitfleet/unitctl/internal/systemd"
)

// Options carries the operation modifiers shared by every command.
type Options struct {
	// Force overwrites install collisions and skips uninstall
	// confirmation prompts.
	Force bool

	// DryRun reports planned actions without mutating anything.
	DryRun bool
}

// Manager coordinates operations across the applications under a fleet
// root.
type Manager struct {
	root    string
	opts    Options
	ctrl    systemd.Controller
	rootChk systemd.RootChecker
	confirm app.Confirmer
	printer *console.Printer
	logger  *slog.Logger
}

// NewManager wires a manager over the given fleet root.
func NewManager(root string, opts Options, ctrl systemd.Controller, rootChk systemd.RootChecker, confirm app.Confirmer, printer *console.Printer, logger *slog.Logger) *Manager {
	return &Manager{
		root:    root,
		opts:    opts,
		ctrl:    ctrl,
		rootChk: rootChk,
		confirm: confirm,
		printer: printer,
		logger:  logger.With("component", "fleet"),
	}
}

// Root returns the fleet root directory.
func (m *Manager) Root() string { return m.root }

// App constructs the named application under the fleet root.
func (m *Manager) App(name string) (*app.App, error) {
	return app.New(m.root, name, m.ctrl, m.confirm, m.printer, m.logger)
}

// Discover lists the applications under the fleet root: every immediate
// subdirectory, following symlinks, that is not hidden. Applications are
// constructed eagerly, so one unreadable config fails the whole discovery
// rather than silently shrinking the fleet.
func (m *Manager) Discover() ([]*app.App, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, fmt.Errorf("fleet: read root %s: %w", m.root, err)
	}

	var apps []*app.App
	for _, name := range m.appDirs(entries) {
		a, err := m.App(name)
		if err != nil {
			return nil, fmt.Errorf("fleet: discover: %w", err)
		}
		apps = append(apps, a)
	}

	m.logger.Debug("discovered applications", "root", m.root, "count", len(apps))
	return apps, nil
}

// appDirs filters ReadDir entries down to application candidates: non-hidden
// directories under the fleet root. ReadDir does not follow symlinks, so a
// link entry is resolved with os.Stat; a symlinked directory still counts.
func (m *Manager) appDirs(entries []os.DirEntry) []string {
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.IsDir() {
			info, err := os.Stat(filepath.Join(m.root, entry.Name()))
			if err != nil || !info.IsDir() {
				continue
			}
		}
		names = append(names, entry.Name())
	}
	return names
}

// Status prints the installation state of the named application, or of
// every discovered application when name is empty.
func (m *Manager) Status(name string) error {
	if name != "" {
		a, err := m.App(name)
		if err != nil {
			return err
		}
		return m.printStatus(a)
	}

	apps, err := m.Discover()
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		m.printer.Warnf("no applications found under %s", m.root)
		return nil
	}
	for _, a := range apps {
		if err := m.printStatus(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) printStatus(a *app.App) error {
	status, err := a.Status()
	if err != nil {
		return err
	}
	m.printer.Infof("status for %s: %s", a.Name, m.printer.RenderStatus(status.String()))
	return nil
}

// Install installs the named application, or every discovered application
// in listing order when name is empty.
func (m *Manager) Install(name string) error {
	if name != "" {
		a, err := m.App(name)
		if err != nil {
			return err
		}
		return m.installOne(a)
	}

	apps, err := m.Discover()
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		m.printer.Warnf("no applications found under %s", m.root)
		return nil
	}
	for _, a := range apps {
		if err := m.installOne(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) installOne(a *app.App) error {
	m.printer.Infof("installing application %s", a.Name)
	if err := a.Install(m.opts.DryRun, m.opts.Force); err != nil {
		return err
	}
	m.printer.Successf("application %s installed and started", a.Name)
	return nil
}

// Uninstall uninstalls the named application, or every discovered
// application in listing order when name is empty. A declined confirmation
// cancels that application without failing the sweep.
func (m *Manager) Uninstall(name string) error {
	if name != "" {
		a, err := m.App(name)
		if err != nil {
			return err
		}
		return m.uninstallOne(a)
	}

	apps, err := m.Discover()
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		m.printer.Warnf("no applications found under %s", m.root)
		return nil
	}
	for _, a := range apps {
		if err := m.uninstallOne(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) uninstallOne(a *app.App) error {
	m.printer.Infof("uninstalling application %s", a.Name)
	cancelled, err := a.Uninstall(m.opts.DryRun, m.opts.Force)
	if err != nil {
		return err
	}
	if !cancelled {
		m.printer.Successf("application %s uninstalled", a.Name)
	}
	return nil
}

// Verify compares installed files against their sources for the named
// application, or for every discovered application when name is empty. Any
// missing or drifted file fails the verification.
func (m *Manager) Verify(name string) error {
	if name != "" {
		a, err := m.App(name)
		if err != nil {
			return err
		}
		return m.verifyOne(a)
	}

	apps, err := m.Discover()
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		m.printer.Warnf("no applications found under %s", m.root)
		return nil
	}
	for _, a := range apps {
		if err := m.verifyOne(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) verifyOne(a *app.App) error {
	results, err := a.Verify()
	if err != nil {
		return err
	}

	var bad int
	for _, r := range results {
		switch {
		case r.Missing:
			m.printer.Warnf("missing: %s", r.Path)
			bad++
		case !r.OK:
			m.printer.Warnf("modified: %s", r.Path)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("fleet: verify %s: %d of %d files out of sync", a.Name, bad, len(results))
	}

	m.printer.Successf("application %s verified, %d files in sync", a.Name, len(results))
	return nil
}

// Logs follows the named application's journal until ctx is cancelled.
func (m *Manager) Logs(ctx context.Context, name string, out, errOut io.Writer) error {
	a, err := m.App(name)
	if err != nil {
		return err
	}
	m.printer.Infof("showing logs for %s (press Ctrl+C to exit)", name)
	return a.Logs(ctx, out, errOut)
}

// Enable marks the named application's unit to start on boot.
func (m *Manager) Enable(name string) error {
	a, err := m.App(name)
	if err != nil {
		return err
	}
	if err := a.Enable(); err != nil {
		return err
	}
	m.printer.Successf("application %s enabled", name)
	return nil
}

// Disable unmarks the named application's unit from starting on boot.
func (m *Manager) Disable(name string) error {
	a, err := m.App(name)
	if err != nil {
		return err
	}
	if err := a.Disable(); err != nil {
		return err
	}
	m.printer.Successf("application %s disabled", name)
	return nil
}

// Restart restarts the named application's unit.
func (m *Manager) Restart(name string) error {
	a, err := m.App(name)
	if err != nil {
		return err
	}
	if err := a.Restart(); err != nil {
		return err
	}
	m.printer.Successf("application %s restarted", name)
	return nil
}

// Init scaffolds a new application directory under the fleet root.
func (m *Manager) Init(name, installLocation string, useUser bool) error {
	dir, err := app.Scaffold(m.root, name, installLocation, useUser)
	if err != nil {
		return err
	}
	m.printer.Successf("application %s created at %s", name, dir)
	return nil
}

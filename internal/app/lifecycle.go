package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unitfleet/unitctl/internal/fsutil"
	"github.com/unitfleet/unitctl/internal/systemd"
)

// Install copies every manifest file into the target directory, reloads the
// service manager, and starts the unit.
//
// The collision pass runs to completion before anything is copied, so a
// refused install mutates nothing. The copy pass has no rollback; a failure
// part-way leaves the earlier copies in place.
func (a *App) Install(dryRun, force bool) error {
	manifest, err := a.Manifest()
	if err != nil {
		return err
	}
	if len(manifest) == 0 {
		return fmt.Errorf("app: install %s: %w", a.Name, ErrEmptyManifest)
	}

	if dryRun {
		for _, rel := range manifest {
			a.printer.Infof("[dry-run] would copy %s to %s", a.sourcePath(rel), a.targetPath(rel))
		}
		if a.scope == systemd.ScopeUser {
			a.printer.Infof("[dry-run] would reload systemd and start %s as user", a.Unit())
		} else {
			a.printer.Infof("[dry-run] would reload systemd and start %s", a.Unit())
		}
		return nil
	}

	for _, rel := range manifest {
		target := a.targetPath(rel)
		if _, err := os.Stat(target); err == nil && !force {
			a.printer.Warnf("file %s already exists, use --force to overwrite", target)
			return &CollisionError{Path: target}
		}
	}

	for _, rel := range manifest {
		source := a.sourcePath(rel)
		target := a.targetPath(rel)

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return &CopyError{Source: source, Target: target, Err: err}
		}
		if err := fsutil.CopyFile(source, target); err != nil {
			return &CopyError{Source: source, Target: target, Err: err}
		}
		a.printer.Infof("copied %s", filepath.Base(target))
		a.logger.Debug("file installed", "source", source, "target", target)
	}

	if err := a.ctrl.DaemonReload(a.scope); err != nil {
		return fmt.Errorf("app: install %s: %w", a.Name, err)
	}
	if err := a.ctrl.Start(a.Unit(), a.scope); err != nil {
		return fmt.Errorf("app: install %s: %w", a.Name, err)
	}
	return nil
}

// Uninstall stops the unit, removes the manifest's installed files, and
// reloads the service manager. Stop and removal failures are reported and
// skipped so the uninstall makes as much forward progress as it can; only a
// failed final daemon-reload propagates. The returned cancelled flag is
// true when the operator declined the confirmation prompt.
func (a *App) Uninstall(dryRun, force bool) (cancelled bool, err error) {
	manifest, err := a.Manifest()
	if err != nil {
		return false, err
	}
	if len(manifest) == 0 {
		return false, fmt.Errorf("app: uninstall %s: %w", a.Name, ErrEmptyManifest)
	}

	if dryRun {
		a.printer.Infof("[dry-run] would stop %s", a.Unit())
		for _, rel := range manifest {
			a.printer.Infof("[dry-run] would remove %s", a.targetPath(rel))
		}
		return false, nil
	}

	if !force {
		ok, err := a.confirm.Confirm(fmt.Sprintf("Are you sure you want to uninstall %s?", a.Name))
		if err != nil {
			return false, fmt.Errorf("app: uninstall %s: %w", a.Name, err)
		}
		if !ok {
			a.printer.Infof("uninstall cancelled")
			return true, nil
		}
	}

	if err := a.ctrl.Stop(a.Unit(), a.scope); err != nil {
		a.printer.Warnf("stop %s: %v", a.Unit(), err)
	}

	for _, rel := range manifest {
		target := a.targetPath(rel)
		switch err := os.Remove(target); {
		case err == nil:
			a.printer.Infof("removed %s", target)
		case errors.Is(err, os.ErrNotExist):
			a.logger.Debug("already removed", "target", target)
		default:
			a.printer.Warnf("remove %s: %v", target, err)
		}
	}

	if err := a.ctrl.DaemonReload(a.scope); err != nil {
		return false, fmt.Errorf("app: uninstall %s: %w", a.Name, err)
	}
	return false, nil
}

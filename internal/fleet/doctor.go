package fleet

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/unitfleet/unitctl/internal/fsutil"
)

// Check is one doctor diagnostic and its outcome.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor runs environment diagnostics and prints one line per check. A
// broken application is reported as a failed check rather than aborting the
// sweep; the returned error summarizes how many checks failed.
func (m *Manager) Doctor() error {
	checks := m.doctorChecks()

	failed := 0
	for _, c := range checks {
		if c.OK {
			m.printer.Successf("%s: %s", c.Name, c.Detail)
		} else {
			m.printer.Errorf("%s: %s", c.Name, c.Detail)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("fleet: doctor: %d of %d checks failed", failed, len(checks))
	}
	return nil
}

func (m *Manager) doctorChecks() []Check {
	var checks []Check

	if m.ctrl.Available() {
		checks = append(checks, Check{Name: "systemctl", OK: true, Detail: "found on PATH"})
	} else {
		checks = append(checks, Check{Name: "systemctl", OK: false, Detail: "not found on PATH"})
	}

	if _, err := exec.LookPath("journalctl"); err == nil {
		checks = append(checks, Check{Name: "journalctl", OK: true, Detail: "found on PATH"})
	} else {
		checks = append(checks, Check{Name: "journalctl", OK: false, Detail: "not found on PATH"})
	}

	if m.rootChk.IsRoot() {
		checks = append(checks, Check{Name: "privileges", OK: true, Detail: "running as root"})
	} else {
		checks = append(checks, Check{Name: "privileges", OK: false, Detail: "not running as root, deployment commands will be refused"})
	}

	entries, err := os.ReadDir(m.root)
	if err != nil {
		checks = append(checks, Check{Name: "fleet root", OK: false, Detail: fmt.Sprintf("%s: %v", m.root, err)})
		return checks
	}
	checks = append(checks, Check{Name: "fleet root", OK: true, Detail: fmt.Sprintf("%s (%d entries)", m.root, len(entries))})

	for _, name := range m.appDirs(entries) {
		a, err := m.App(name)
		if err != nil {
			checks = append(checks, Check{Name: "app " + name, OK: false, Detail: err.Error()})
			continue
		}
		if fsutil.Writable(a.TargetDir()) {
			checks = append(checks, Check{Name: "app " + name, OK: true, Detail: fmt.Sprintf("target %s writable", a.TargetDir())})
		} else {
			checks = append(checks, Check{Name: "app " + name, OK: false, Detail: fmt.Sprintf("target %s not writable", a.TargetDir())})
		}
	}

	return checks
}

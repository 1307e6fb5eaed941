package app

import (
	"fmt"

	"github.com/unitfleet/unitctl/internal/integrity"
)

// Verify compares every installed manifest file against its source by
// content digest, one result per manifest entry. Missing and drifted
// targets are reported in the results; an unreadable source file is an
// error, since without it there is nothing to compare against.
func (a *App) Verify() ([]integrity.CheckResult, error) {
	manifest, err := a.Manifest()
	if err != nil {
		return nil, err
	}
	if len(manifest) == 0 {
		return nil, fmt.Errorf("app: verify %s: %w", a.Name, ErrEmptyManifest)
	}

	results := make([]integrity.CheckResult, 0, len(manifest))
	for _, rel := range manifest {
		want, err := integrity.HashFile(a.sourcePath(rel))
		if err != nil {
			return nil, fmt.Errorf("app: verify %s: %w", a.Name, err)
		}
		result, err := integrity.CompareFile(a.targetPath(rel), want)
		if err != nil {
			return nil, fmt.Errorf("app: verify %s: %w", a.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

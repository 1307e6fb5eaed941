package app

import (
	"errors"
	"fmt"
)

// ErrEmptyManifest is returned when install, uninstall, or verify runs
// against an application whose source directory holds no deployable files.
var ErrEmptyManifest = errors.New("app: manifest is empty")

// ConfigError reports a missing, malformed, or incomplete config.toml.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("app: config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ManifestError reports a source tree that could not be walked.
type ManifestError struct {
	Dir string
	Err error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("app: manifest %s: %v", e.Dir, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// CollisionError reports a target path that already exists when installing
// without force.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("app: file %s already exists (use --force to overwrite)", e.Path)
}

// CopyError reports a failed file copy during installation.
type CopyError struct {
	Source string
	Target string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("app: copy %s to %s: %v", e.Source, e.Target, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

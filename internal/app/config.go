package app

import (
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/unitfleet/unitctl/internal/systemd"
)

// ConfigFileName is the per-application configuration file, expected at the
// top of each application directory. It is metadata, never deployed.
const ConfigFileName = "config.toml"

// Config is the per-application configuration read from config.toml.
type Config struct {
	Systemd SystemdConfig `toml:"systemd"`
}

// SystemdConfig declares where the application's files install and which
// service-manager instance owns its unit.
type SystemdConfig struct {
	// InstallLocation is the directory manifest files are copied into.
	InstallLocation string `toml:"install_location"`

	// UseUser selects the per-user systemd instance instead of the
	// system one.
	UseUser bool `toml:"use_user"`
}

// Scope returns the service-manager scope the configuration selects.
func (c Config) Scope() systemd.Scope {
	if c.Systemd.UseUser {
		return systemd.ScopeUser
	}
	return systemd.ScopeSystem
}

// LoadConfig reads and validates an application's config.toml. Both
// systemd.install_location and systemd.use_user must be present; a bool
// zero value is indistinguishable from an omitted key, so presence is
// checked against the decoder metadata.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	if !md.IsDefined("systemd", "install_location") {
		return Config{}, &ConfigError{Path: path, Err: errors.New("missing key systemd.install_location")}
	}
	if !md.IsDefined("systemd", "use_user") {
		return Config{}, &ConfigError{Path: path, Err: errors.New("missing key systemd.use_user")}
	}
	if cfg.Systemd.InstallLocation == "" {
		return Config{}, &ConfigError{Path: path, Err: errors.New("systemd.install_location is empty")}
	}
	return cfg, nil
}

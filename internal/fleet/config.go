package fleet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the tool configuration is looked up unless
// overridden on the command line.
const DefaultConfigPath = "/etc/unitctl/config.yaml"

// DefaultLogLevel is the log level used when the configuration does not set
// one.
const DefaultLogLevel = "info"

// Config is the tool-level configuration. Every field is optional;
// command-line flags override file values.
type Config struct {
	// FleetRoot is the directory whose subdirectories are applications.
	// Default: the directory holding the unitctl executable.
	FleetRoot string `yaml:"fleet_root"`

	// LogLevel is the diagnostic log level: debug, info, warn, or error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// ApplyDefaults sets default values for fields that were not specified.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that the configuration values are acceptable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("fleet: config: invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// ParseConfig reads a YAML configuration file, applies defaults, and
// validates the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fleet: config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fleet: config: parse %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package config provides configuration loading and management for the
// filer CLI.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the filer CLI configuration.
// Loaded from ~/.filer/config.yaml; environment variables take precedence.
type Config struct {
	// Root is the default directory projects are created under.
	// Env: FILER_ROOT, Default: "."
	Root string `mapstructure:"root" yaml:"root,omitempty"`

	// Template is the path to the default naming template.
	// Env: FILER_TEMPLATE. Empty means the built-in template.
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// Output is the default output format: yaml, json, or table.
	// Env: FILER_OUTPUT, Default: "yaml"
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `filer config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Root:   ".",
		Output: "yaml",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Output == "" {
		c.Output = "yaml"
	}
	return c
}

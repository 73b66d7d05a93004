package config

import (
	"os"

	"github.com/datafiler/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue describes a single resolved configuration value.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains inputs for resolving a single value.
type ResolveOptions struct {
	// Key is the configuration key (used for logging).
	Key string
	// FlagValue is the command-line flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable to consult (empty to skip).
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// Default is the built-in default (empty if none).
	Default string
}

// Resolve resolves a configuration value using precedence:
// (1) command-line flag, (2) environment variable, (3) config file,
// (4) built-in default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
	default:
		result.Value = opts.Default
		result.Source = SourceDefault
	}

	return result
}

// ResolveRoot resolves the project root directory using precedence:
// (1) --root flag, (2) FILER_ROOT env, (3) config.root, (4) "."
func ResolveRoot(flagValue string, cfg *Config) ResolvedValue {
	var configValue string
	if cfg != nil {
		configValue = cfg.Root
	}
	return Resolve(ResolveOptions{
		Key:         "root",
		FlagValue:   flagValue,
		EnvVar:      "FILER_ROOT",
		ConfigValue: configValue,
		Default:     ".",
	})
}

// ResolveTemplate resolves the template path using precedence:
// (1) --template flag, (2) FILER_TEMPLATE env, (3) config.template.
// An empty result means the built-in template should be used.
func ResolveTemplate(flagValue string, cfg *Config) ResolvedValue {
	var configValue string
	if cfg != nil {
		configValue = cfg.Template
	}
	return Resolve(ResolveOptions{
		Key:         "template",
		FlagValue:   flagValue,
		EnvVar:      "FILER_TEMPLATE",
		ConfigValue: configValue,
	})
}

// ResolveOutput resolves the output format using precedence:
// (1) --output flag, (2) FILER_OUTPUT env, (3) config.output, (4) "yaml".
func ResolveOutput(flagValue string, cfg *Config) ResolvedValue {
	var configValue string
	if cfg != nil {
		configValue = cfg.Output
	}
	return Resolve(ResolveOptions{
		Key:         "output",
		FlagValue:   flagValue,
		EnvVar:      "FILER_OUTPUT",
		ConfigValue: configValue,
		Default:     "yaml",
	})
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) FILER_CONFIG env, (3) ~/.filer/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("FILER_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

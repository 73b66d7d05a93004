package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datafiler/cli/internal/config"
	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/output"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  `Initialize and validate the filer CLI configuration.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file to ~/.filer/config.yaml.

The configuration holds the default project root, the default naming
template path, the output format, and logging settings. Environment
variables (FILER_ROOT, FILER_TEMPLATE, FILER_OUTPUT) override file
values; command-line flags override both.

Examples:
  # Initialize configuration
  filer config init

  # Overwrite existing configuration
  filer config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return wrapExit(oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return wrapExit(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return wrapExit(fmt.Errorf("creating %s: %w", paths.HomeDir, err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return wrapExit(fmt.Errorf("encoding config: %w", err))
	}
	if err := os.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return wrapExit(fmt.Errorf("writing %s: %w", paths.ConfigFile, err))
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("Validate with: filer config vet")

	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration",
		Long: `Load the configuration file and check its values.

Checks that the file parses, that the output format is one of the
supported formats, and that the configured template (if any) loads and
validates.

Examples:
  filer config vet
  filer config vet --config ./filer.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	exists, err := config.ConfigFileExists(configFlag)
	if err != nil {
		return wrapExit(err)
	}
	if !exists {
		return wrapExit(oerrors.NewNotFoundError(
			"configuration file not found", configFlag,
			"Run `filer config init` to create one."))
	}

	cfg := GetConfig()
	if !output.Format(cfg.Output).IsValid() {
		return wrapExit(oerrors.NewValidationError(
			fmt.Sprintf("invalid output format: %s", cfg.Output), "", "output",
			fmt.Sprintf("Valid formats: %v", output.ValidFormats())))
	}

	// A configured template must itself load and validate
	if cfg.Template != "" {
		if _, err := loadTemplate(""); err != nil {
			return wrapExit(err)
		}
	}

	output.Println(fmt.Sprintf("%s Configuration is valid", output.Checkmark()))
	output.Println("  Root:     " + cfg.Root)
	if cfg.Template != "" {
		output.Println("  Template: " + cfg.Template)
	} else {
		output.Println("  Template: (built-in)")
	}
	output.Println("  Output:   " + cfg.Output)

	return nil
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datafiler/cli/internal/config"
	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/template"
)

var (
	// Global flags
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Loaded configuration (set during PersistentPreRunE)
	filerConfig    *config.Config
	resolvedOutput config.ResolvedValue
)

// NewRootCmd creates the root command for the filer CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filer",
		Short: "File sensor data by decomposing filenames",
		Long: `filer decomposes structured filenames into fields, derives storage
paths from them, and files sensor data into project directory trees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: FILER_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: yaml, json, table")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewPlaceCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load configuration first so we can use config values for logging setup
	loader := config.NewLoader()
	cfg, err := loader.LoadWithDefaults(configFlag)
	if err != nil {
		output.Warn("config load failed, using defaults", "error", err)
		// Don't fail here - commands fall back to built-in defaults
		cfg = config.DefaultConfig()
	}
	filerConfig = cfg

	// Resolve the output format: flag > env > config > default
	resolvedOutput = config.ResolveOutput(outputFormatFlag, filerConfig)
	if !output.Format(resolvedOutput.Value).IsValid() {
		return wrapExit(oerrors.NewValidationError(
			fmt.Sprintf("invalid output format: %s", resolvedOutput.Value), "", "output",
			fmt.Sprintf("Valid formats: %v", output.ValidFormats())))
	}

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		// Flag was explicitly set by user
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if filerConfig.Log.Timestamps != nil {
		// Config has a value
		logCfg.Timestamps = filerConfig.Log.Timestamps
	}
	// else: nil means SetupLogging defaults to true

	output.SetupLogging(logCfg)

	// Log config resolution at DEBUG level
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{resolvedOutput})
	}

	return nil
}

// GetConfig returns the loaded filer configuration.
func GetConfig() *config.Config {
	return filerConfig
}

// GetOutputFormat returns the resolved output format.
func GetOutputFormat() output.Format {
	if resolvedOutput.Value == "" {
		return output.FormatYAML
	}
	return output.Format(resolvedOutput.Value)
}

// loadTemplate resolves and loads the naming template for a command.
// Precedence: flag > FILER_TEMPLATE env > config.template > built-in.
func loadTemplate(flagValue string) (*template.Template, error) {
	resolved := config.ResolveTemplate(flagValue, filerConfig)
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{resolved})
	}
	if resolved.Value == "" {
		return template.Default(), nil
	}
	return template.Load(resolved.Value)
}

// wrapExit pairs an error with its exit code so main can surface it.
func wrapExit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/template"
)

var templateInitForce bool

// NewTemplateCmd creates the template command group.
func NewTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage naming templates",
		Long:  `Create and validate naming templates.`,
	}

	cmd.AddCommand(NewTemplateInitCmd())
	cmd.AddCommand(NewTemplateVetCmd())

	return cmd
}

// NewTemplateInitCmd creates the template init command.
func NewTemplateInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in template to a file",
		Long: `Write the built-in naming template to a file as a starting point
for customisation.

Arguments:
  path    Destination file (default: template.yaml)

Examples:
  # Write the built-in template to ./template.yaml
  filer template init

  # Write to a specific path, overwriting what is there
  filer template init naming.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTemplateInit,
	}

	cmd.Flags().BoolVarP(&templateInitForce, "force", "f", false,
		"Overwrite an existing file")

	return cmd
}

func runTemplateInit(cmd *cobra.Command, args []string) error {
	dest := "template.yaml"
	if len(args) > 0 {
		dest = args[0]
	}

	if _, err := os.Stat(dest); err == nil && !templateInitForce {
		return wrapExit(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "template file already exists",
			Location: dest,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		})
	}

	if err := os.WriteFile(dest, template.DefaultYAML(), 0o644); err != nil {
		return wrapExit(fmt.Errorf("writing %s: %w", dest, err))
	}

	output.Println(fmt.Sprintf("%s Wrote template to %s",
		output.Checkmark(), output.StyleNoun.Render(dest)))
	output.Println("Validate with: filer template vet " + dest)

	return nil
}

// NewTemplateVetCmd creates the template vet command.
func NewTemplateVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet <file>",
		Short: "Validate a naming template",
		Long: `Load a naming template and check it for structural problems:
missing separators, empty rules, duplicate field names, layout fields
that no rule declares, and patterns that do not compile.

Examples:
  filer template vet naming.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplateVet,
	}
}

func runTemplateVet(cmd *cobra.Command, args []string) error {
	tpl, err := template.Load(args[0])
	if err != nil {
		return wrapExit(err)
	}

	output.Println(fmt.Sprintf("%s Template %s is valid",
		output.Checkmark(), output.StyleNoun.Render(args[0])))
	output.Println(fmt.Sprintf("  Version: %s", tpl.Version))
	output.Println(fmt.Sprintf("  Rules:   %d", len(tpl.File)))
	output.Println(fmt.Sprintf("  Layout:  %v", tpl.Layout.Structure))

	return nil
}

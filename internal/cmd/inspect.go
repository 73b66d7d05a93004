package cmd

import (
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datafiler/cli/internal/core"
	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/template"
)

var inspectTemplateFlag string

// inspectReport is the decomposition result shaped for output.
type inspectReport struct {
	// File is the filename that was decomposed.
	File string `json:"file"`

	// Rule is the selector of the file rule that matched.
	Rule string `json:"rule"`

	// Fields maps field names to extracted (or defaulted) values.
	Fields map[string]string `json:"fields"`

	// Rest is the unconsumed remainder of the stem, if any.
	Rest string `json:"rest,omitempty"`

	// Path is the derived storage path relative to a project root.
	Path string `json:"path"`
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how a filename decomposes",
		Long: `Decompose a filename against a template and show the extracted
fields and the storage path they resolve to. Nothing is copied; this is
a read-only view of what 'filer place' would derive.

Examples:
  # Inspect against the built-in template
  filer inspect 2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin

  # Inspect against a custom template, as JSON
  filer inspect capture_0001.tiff -t naming.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().StringVarP(&inspectTemplateFlag, "template", "t", "",
		"Path to naming template (env: FILER_TEMPLATE, default: built-in)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := filepath.Base(args[0])

	tpl, err := loadTemplate(inspectTemplateFlag)
	if err != nil {
		return wrapExit(err)
	}

	fm, err := core.Decompose(tpl, filename)
	if err != nil {
		return wrapExit(err)
	}

	segments, err := core.ResolvePath(tpl, fm.Fields)
	if err != nil {
		return wrapExit(err)
	}

	report := inspectReport{
		File:   fm.Name,
		Rule:   fm.Rule,
		Fields: fm.Fields,
		Rest:   fm.Rest,
		Path:   path.Join(segments...),
	}

	format := GetOutputFormat()
	if format == output.FormatTable {
		output.Print(renderInspectTable(tpl, report))
		return nil
	}
	return output.WriteObject(cmd.OutOrStdout(), report, format)
}

// renderInspectTable renders the report with fields in template order.
func renderInspectTable(tpl *template.Template, report inspectReport) string {
	tbl := output.NewTable("FIELD", "VALUE")
	tbl.Row("file", report.File)
	tbl.Row("rule", report.Rule)
	if spec, ok := tpl.File.Rule(report.Rule); ok {
		for _, name := range spec.FieldNames() {
			if value, ok := report.Fields[name]; ok {
				tbl.Row(name, value)
			}
		}
	}
	if report.Rest != "" {
		tbl.Row("rest", report.Rest)
	}
	tbl.Row("path", report.Path)
	return tbl.String() + "\n"
}

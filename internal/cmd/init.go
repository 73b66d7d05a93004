package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/datafiler/cli/internal/config"
	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/project"
)

var (
	initRootFlag         string
	initTemplateFlag     string
	initYearFlag         int
	initExternalFlag     bool
	initResearcherFlag   string
	initOrganisationFlag string
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <summary>",
		Short: "Create a new project directory",
		Long: `Create a new project directory named by the naming convention.

The project name is composed from the metadata fields present: year,
slugified summary, internal/external, researcher, and organisation.
The project's template and metadata are written to metadata.yaml inside
the new directory.

Examples:
  # Create a project under the current directory
  filer init "Test Project"

  # Create an external project with full attribution
  filer init "Leaf Scans" --external --researcher "Jane Doe" --organisation "ACME"

  # Create a project under a specific root with a custom template
  filer init "Test Project" --root /data/projects --template naming.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initRootFlag, "root", "",
		"Directory to create the project under (env: FILER_ROOT)")
	cmd.Flags().StringVarP(&initTemplateFlag, "template", "t", "",
		"Path to naming template (env: FILER_TEMPLATE, default: built-in)")
	cmd.Flags().IntVar(&initYearFlag, "year", time.Now().Year(),
		"Project year")
	cmd.Flags().BoolVar(&initExternalFlag, "external", false,
		"Mark the project as external")
	cmd.Flags().StringVar(&initResearcherFlag, "researcher", "",
		"Researcher name")
	cmd.Flags().StringVar(&initOrganisationFlag, "organisation", "",
		"Organisation name")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	root := config.ResolveRoot(initRootFlag, GetConfig())

	tpl, err := loadTemplate(initTemplateFlag)
	if err != nil {
		return wrapExit(err)
	}

	meta := project.Metadata{
		Year:             initYearFlag,
		Summary:          args[0],
		Internal:         !initExternalFlag,
		ResearcherName:   initResearcherFlag,
		OrganisationName: initOrganisationFlag,
	}

	mgr, err := project.New(root.Value, tpl, meta)
	if err != nil {
		return wrapExit(err)
	}

	output.Debug("initialising project",
		"name", mgr.ProjectName(),
		"root", root.Value,
		"root_source", root.Source,
	)

	if err := mgr.Init(); err != nil {
		return wrapExit(err)
	}

	output.Println(fmt.Sprintf("%s Created project %s",
		output.Checkmark(), output.StyleNoun.Render(mgr.ProjectName())))
	output.Println("  Location: " + mgr.Location())
	output.Println("  Metadata: " + mgr.Location() + "/" + project.MetadataName)

	return nil
}

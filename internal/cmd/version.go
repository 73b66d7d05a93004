package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show filer CLI version, commit, and build information.`,
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	if format := GetOutputFormat(); format == output.FormatJSON {
		return output.WriteObject(cmd.OutOrStdout(), info, format)
	}

	output.Println(fmt.Sprintf("filer version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:   %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:    %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:       %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Platform: %s", info.Platform))

	return nil
}

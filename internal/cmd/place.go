package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/output"
	"github.com/datafiler/cli/internal/project"
)

var (
	placeMoveFlag   bool
	placeDryRunFlag bool
	placeSuffixFlag string
	placeExtFlag    string
)

// placeResult records the outcome of placing one file.
type placeResult struct {
	Source string
	Dest   string
	Status string
	Err    error
}

// NewPlaceCmd creates the place command.
func NewPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place <project-dir> <file>...",
		Short: "File data files into a project",
		Long: `Decompose each filename against the project's template and copy the
file to its derived location inside the project.

Each file is handled independently: a file that fails to decompose does
not stop the rest of the batch. The command exits non-zero when any
file failed.

Examples:
  # Copy files into a project
  filer place ./2025_test-project_internal data/*.bin

  # Move instead of copying
  filer place ./2025_test-project_internal data/*.bin --move

  # Show destinations without touching the filesystem
  filer place ./2025_test-project_internal data/*.bin --dry-run

  # Rename on the way in: append a suffix and switch the extension
  filer place ./2025_test-project_internal shot.bin --suffix preproc-0 --ext .jpeg`,
		Args: cobra.MinimumNArgs(2),
		RunE: runPlace,
	}

	cmd.Flags().BoolVar(&placeMoveFlag, "move", false,
		"Remove the source file after a successful copy")
	cmd.Flags().BoolVar(&placeDryRunFlag, "dry-run", false,
		"Plan destinations without copying anything")
	cmd.Flags().StringVar(&placeSuffixFlag, "suffix", "",
		"Suffix appended to each destination filename stem")
	cmd.Flags().StringVar(&placeExtFlag, "ext", "",
		"Destination extension override (default: keep original)")

	return cmd
}

func runPlace(cmd *cobra.Command, args []string) error {
	projectDir := args[0]
	files := args[1:]

	mgr, err := project.Load(projectDir)
	if err != nil {
		return wrapExit(err)
	}

	opts := project.PlaceOptions{
		Suffix: placeSuffixFlag,
		Ext:    placeExtFlag,
		Move:   placeMoveFlag,
	}

	output.Debug("placing files",
		"project", mgr.ProjectName(),
		"files", len(files),
		"move", placeMoveFlag,
		"dry_run", placeDryRunFlag,
	)

	results := make([]placeResult, 0, len(files))
	action := func() error {
		for _, src := range files {
			results = append(results, placeOne(mgr, src, opts))
		}
		return nil
	}

	title := fmt.Sprintf("Placing %d file(s) into %s...", len(files), mgr.ProjectName())
	if placeDryRunFlag {
		title = fmt.Sprintf("Planning %d file(s)...", len(files))
		output.Info("dry run, nothing will be copied")
	}
	if err := output.RunWithSpinner(context.Background(), action, output.WithTitle(title)); err != nil {
		return wrapExit(err)
	}

	// Report per-file outcomes
	var placed, failed int
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			output.Println(fmt.Sprintf("  %s  %s",
				output.StatusStyle(output.StatusFailed).Render(output.StatusFailed), r.Source))
			output.Error("placing failed", "file", r.Source, "error", r.Err)
			continue
		}
		placed++
		output.Println(fmt.Sprintf("  %s  %s -> %s",
			output.StatusStyle(r.Status).Render(r.Status), r.Source, output.StyleNoun.Render(r.Dest)))
	}

	verb := "placed"
	switch {
	case placeDryRunFlag:
		verb = "planned"
	case placeMoveFlag:
		verb = "moved"
	}
	summary := fmt.Sprintf("%s %d %s, %d failed", output.Checkmark(), placed, verb, failed)
	output.Println(output.StyleSummary.Render(summary))

	if failed > 0 {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%d of %d files failed", failed, len(files)),
			Code:    oerrors.ExitCodeFromError(firstErr),
			Printed: true,
		}
	}
	return nil
}

// placeOne plans or places a single file, never aborting the batch.
func placeOne(mgr *project.Manager, src string, opts project.PlaceOptions) placeResult {
	if placeDryRunFlag {
		placement, err := mgr.Plan(filepath.Base(src), opts)
		if err != nil {
			return placeResult{Source: src, Status: output.StatusFailed, Err: err}
		}
		return placeResult{
			Source: src,
			Dest:   filepath.Join(placement.Dir(mgr.Location()), placement.Name),
			Status: output.StatusPlanned,
		}
	}

	placement, err := mgr.PlaceFile(src, opts)
	if err != nil {
		return placeResult{Source: src, Status: output.StatusFailed, Err: err}
	}
	status := output.StatusPlaced
	if opts.Move {
		status = output.StatusMoved
	}
	return placeResult{
		Source: src,
		Dest:   filepath.Join(placement.Dir(mgr.Location()), placement.Name),
		Status: status,
	}
}

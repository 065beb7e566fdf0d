package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/jpicheck/internal/engine"
	"github.com/danieljhkim/jpicheck/internal/overlap"
)

var checkCmd = &cobra.Command{
	Use:   "check [classes-dir...]",
	Short: "Check class directories for overlapping sources",
	Long: `Scan the given class output directories, in order, for SezPoz annotation
indexes (META-INF/annotations) and the Jenkins plugin descriptor
(META-INF/services/hudson.Plugin).

The check fails when two directories contain an index of the same name, or
when more than one directory declares a plugin descriptor. Both are fixed by
compiling the source sets jointly. On success every discovered path is
written to the --output manifest, one per line.

Directories may be glob patterns such as 'build/classes/*/main'. When no
directories are given, classes_dirs from the config file is used.`,
	RunE: runCheck,
}

func init() {
	// Read back through config.Load so file and environment values apply
	checkCmd.Flags().StringP("output", "o", "", "Manifest file to write")
	checkCmd.Flags().Bool("dry-run", false, "Run the checks without writing the manifest")
	checkCmd.Flags().Bool("diff", false, "Show changes against the previous manifest")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.ClassesDirs = args
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w (use --output or set output in the config file)", err)
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	eng := newEngine(logger)
	req := &engine.CheckRequest{
		ClassesDirs: cfg.ClassesDirs,
		Output:      cfg.Output,
		DryRun:      cfg.DryRun,
		Diff:        cfg.Diff,
	}

	out := cmd.OutOrStdout()
	result, err := eng.Check(cmd.Context(), req)
	if err != nil {
		if !jsonOutput {
			printCheckFailure(out, err)
		}
		return err
	}

	if jsonOutput {
		return outputJSON(out, result)
	}

	printCheckResult(out, result)
	return nil
}

func printCheckFailure(w io.Writer, err error) {
	var collision *overlap.CollisionError
	var multi *overlap.MultiplicityError

	switch {
	case errors.As(err, &collision):
		PrintSection(w, "Overlapping SezPoz Index")
		PrintLabelValue(w, "Index", collision.Name)
		PrintLabelValue(w, "First seen in", collision.FirstRoot)
		PrintLabelValue(w, "Also found in", collision.Root)
		_, _ = fmt.Fprintln(w)
		PrintWarning(w, "Compile these source sets jointly so their indexes are merged.")
	case errors.As(err, &multi):
		PrintSection(w, "Multiple Plugin Descriptors")
		PrintList(w, multi.Paths, 1)
		_, _ = fmt.Fprintln(w)
		PrintWarning(w, "Compile these source sets jointly so only one plugin implementation is declared.")
	}
}

func printCheckResult(w io.Writer, result *engine.CheckResult) {
	PrintSuccess(w, fmt.Sprintf("No overlapping sources in %s", PrintCount(len(result.Roots), "classes directory", "classes directories")))

	PrintLabelValue(w, "Manifest", result.Output)
	PrintLabelValue(w, "Entries", fmt.Sprintf("%d", len(result.Paths)))
	if desc := result.DescriptorPath(); desc != "" {
		PrintLabelValue(w, "Plugin descriptor", desc)
	} else {
		PrintLabelValue(w, "Plugin descriptor", "none")
	}
	if !result.Written {
		PrintWarning(w, "Dry run: manifest not written")
	}

	if result.Diff != "" {
		PrintSection(w, "Manifest Changes")
		PrintDiff(w, result.Diff)
	}
}

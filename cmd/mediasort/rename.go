package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/internal/organize"
)

var renameCmd = &cobra.Command{
	Use:   "rename [flags] <dir>",
	Short: "Rename media files in place to their canonical names",
	Long: `Rename every media file of one kind under a directory to its
canonical name, without moving it.

Examples:
  mediasort rename --kind music --dry-run /downloads/album
  mediasort rename --kind game /roms/snes`,
	Args: cobra.ExactArgs(1),
	RunE: runRenameCmd,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().StringVar(&kindName, "kind", "video", "Media kind: video, music, book, game")
	renameCmd.Flags().Bool("dry-run", false, "Show planned renames without touching files")
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind()
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ops := opsFor(kind, nil)
	files, err := ops.FindFiles(args[0])
	if err != nil {
		return fmt.Errorf("finding files: %w", err)
	}

	report := organize.BatchRename(files, func(oldName string) string {
		return ops.GenerateNewFilename(nil, oldName)
	}, dryRun)

	printBatchReport(report, dryRun)
	if len(report.Errors) > 0 {
		return fmt.Errorf("%d file(s) failed", len(report.Errors))
	}
	return nil
}

func printBatchReport(report organize.BatchReport, dryRun bool) {
	verb := "renamed"
	if dryRun {
		verb = "would rename"
	}
	for _, pair := range report.Renamed {
		fmt.Printf("%s: %s -> %s\n", verb, pair.From, pair.To)
	}
	for _, skipped := range report.Skipped {
		fmt.Printf("skipped (already canonical): %s\n", skipped)
	}
	for _, fe := range report.Errors {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", fe.File, fe.Err)
	}
	fmt.Fprintf(os.Stderr, "%d total, %d %s, %d skipped, %d error(s)\n",
		report.Total, len(report.Renamed), verb, len(report.Skipped), len(report.Errors))
}

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/mediasort/internal/media"
	"github.com/vmunix/mediasort/internal/organize"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [flags] [roots...]",
	Short: "Move media files into the library hierarchy",
	Long: `Scan the library roots for one kind, rename each file to its
canonical name, and move it into the destination hierarchy.

Roots given on the command line override the configured library roots;
--dest overrides the configured destination.

Examples:
  mediasort organize --kind video --dry-run
  mediasort organize --kind music --dest /library/music /downloads/music`,
	RunE: runOrganizeCmd,
}

func init() {
	rootCmd.AddCommand(organizeCmd)
	organizeCmd.Flags().StringVar(&kindName, "kind", "video", "Media kind: video, music, book, game")
	organizeCmd.Flags().String("dest", "", "Destination library root")
	organizeCmd.Flags().Bool("dry-run", false, "Show planned moves without touching files")
}

func runOrganizeCmd(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind()
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	dest, _ := cmd.Flags().GetString("dest")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log.Level)

	lib := libraryFor(kind, cfg)
	roots := args
	if len(roots) == 0 {
		if !lib.Configured() {
			return fmt.Errorf("no %s library roots configured and none given", kind)
		}
		roots = lib.Roots
	}
	if dest == "" {
		dest = lib.Dest
	}
	if dest == "" {
		return fmt.Errorf("no destination: set libraries.%s.dest or pass --dest", kind)
	}

	ops := opsFor(kind, cfg)
	files, err := media.ScanRoots(cmd.Context(), ops, roots)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("nothing to organize")
		return nil
	}

	var history *organize.HistoryStore
	if cfg.History.Enabled && !dryRun {
		history, err = openHistory(cfg.History.Path)
		if err != nil {
			return err
		}
	}

	org := media.NewOrganizer(ops, organize.NewMover(log), history, log, media.OrganizeOptions{
		DryRun:             dryRun,
		Copy:               cfg.Organize.Copy,
		CreateFolders:      cfg.Organize.CreateFolders,
		SkipDuplicates:     cfg.Organize.SkipDuplicates,
		BackupBeforeRename: cfg.Organize.BackupBeforeRename,
	})

	report := org.OrganizeFiles(cmd.Context(), files, dest, nil)
	printOrganizeReport(report, dryRun)
	if len(report.Errors) > 0 {
		return fmt.Errorf("%d file(s) failed", len(report.Errors))
	}
	return nil
}

func openHistory(path string) (*organize.HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	store := organize.NewHistoryStore(db)
	if err := store.Init(); err != nil {
		return nil, err
	}
	return store, nil
}

func printOrganizeReport(report *media.OrganizeReport, dryRun bool) {
	verb := "moved"
	if dryRun {
		verb = "would move"
	}
	for _, pair := range report.Moved {
		fmt.Printf("%s: %s -> %s\n", verb, pair.From, pair.To)
	}
	for _, skipped := range report.Skipped {
		fmt.Printf("skipped (duplicate): %s\n", skipped)
	}
	for _, fe := range report.Errors {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", fe.File, fe.Err)
	}
	fmt.Fprintf(os.Stderr, "%d total, %d %s, %d skipped, %d error(s)\n",
		report.TotalFiles, len(report.Moved), verb, len(report.Skipped), len(report.Errors))
}

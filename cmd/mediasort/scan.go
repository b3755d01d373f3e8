package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/internal/config"
	"github.com/vmunix/mediasort/internal/media"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [roots...]",
	Short: "List media files under the library roots",
	Long: `Scan directories for media files of one kind.

Roots given on the command line override the configured library roots.

Examples:
  mediasort scan --kind video /downloads
  mediasort scan --kind music`,
	RunE: runScanCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&kindName, "kind", "video", "Media kind: video, music, book, game")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind()
	if err != nil {
		return err
	}

	roots := args
	var cfg *config.Config
	if len(roots) == 0 {
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		lib := libraryFor(kind, cfg)
		if !lib.Configured() {
			return fmt.Errorf("no %s library roots configured and none given", kind)
		}
		roots = lib.Roots
	}

	ops := opsFor(kind, cfg)
	files, err := media.ScanRoots(cmd.Context(), ops, roots)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
	for _, f := range files {
		fmt.Println(f)
	}
	fmt.Fprintf(os.Stderr, "%d file(s)\n", len(files))
	return nil
}

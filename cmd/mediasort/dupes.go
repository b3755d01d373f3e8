package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/internal/organize"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes [flags] <dir>",
	Short: "Find duplicate media files",
	Long: `Group media files of one kind with identical content.

By default files are compared by SHA-256 digest; --by-size groups by
byte length only, which is fast but can report false positives.

Examples:
  mediasort dupes --kind video /library/movies
  mediasort dupes --kind music --by-size /downloads`,
	Args: cobra.ExactArgs(1),
	RunE: runDupesCmd,
}

func init() {
	rootCmd.AddCommand(dupesCmd)
	dupesCmd.Flags().StringVar(&kindName, "kind", "video", "Media kind: video, music, book, game")
	dupesCmd.Flags().Bool("by-size", false, "Group by file size instead of content hash")
}

func runDupesCmd(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind()
	if err != nil {
		return err
	}
	bySize, _ := cmd.Flags().GetBool("by-size")

	key := organize.ByHash
	if bySize {
		key = organize.BySize
	}

	ops := opsFor(kind, nil)
	groups, err := organize.FindDuplicates(args[0], ops.SupportedExtensions(), key)
	if err != nil {
		return fmt.Errorf("finding duplicates: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("no duplicates found")
		return nil
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i > 0 {
			fmt.Println()
		}
		paths := groups[k]
		sort.Strings(paths)
		fmt.Printf("group of %d:\n", len(paths))
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/internal/organize"
)

var historyCmd = &cobra.Command{
	Use:   "history [flags]",
	Short: "Show the file operation journal",
	Long: `List journaled file operations, most recent first.

Examples:
  mediasort history --limit 20
  mediasort history --failed
  mediasort history --batch 3f1c...`,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("op", "", "Filter by operation: copy, move, rename, skip")
	historyCmd.Flags().String("batch", "", "Filter by batch operation id")
	historyCmd.Flags().Bool("failed", false, "Only show failed operations")
	historyCmd.Flags().Int("limit", 50, "Maximum entries to show")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in the config")
	}

	store, err := openHistory(cfg.History.Path)
	if err != nil {
		return err
	}

	var filter organize.HistoryFilter
	if op, _ := cmd.Flags().GetString("op"); op != "" {
		filter.Op = &op
	}
	if batch, _ := cmd.Flags().GetString("batch"); batch != "" {
		filter.OperationID = &batch
	}
	filter.FailedOnly, _ = cmd.Flags().GetBool("failed")
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	entries, err := store.List(filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no history entries")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "FAILED"
			if e.ErrorKind != "" {
				status = "FAILED (" + e.ErrorKind + ")"
			}
		}
		fmt.Printf("%s  %-6s  %-18s  %s -> %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Op, status, e.Source, e.Destination)
	}
	return nil
}

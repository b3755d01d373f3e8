package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/pkg/parse"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags] <title> [candidates...]",
	Short: "Fuzzy-match a title against candidates",
	Long: `Score candidate titles against a query title and print the best
match with its confidence. Candidates come from the command line or,
with --file, one per line from a file.

Examples:
  mediasort match "The Matrix" "Matrix, The" "The Matrix Reloaded"
  mediasort match --file titles.txt "Dark Tower"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatchCmd,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringP("file", "f", "", "Read candidate titles from file (one per line)")
	matchCmd.Flags().Bool("all", false, "Print every candidate's score, not just the best")
}

func runMatchCmd(cmd *cobra.Command, args []string) error {
	query := args[0]
	candidates := args[1:]

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		fromFile, err := readLines(file)
		if err != nil {
			return fmt.Errorf("reading candidates: %w", err)
		}
		candidates = append(candidates, fromFile...)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates given")
	}

	showAll, _ := cmd.Flags().GetBool("all")
	if showAll {
		for _, cand := range candidates {
			m := parse.MatchTitle(query, []string{cand})
			fmt.Printf("%.3f  %-8s  %s\n", m.Score, m.Confidence, cand)
		}
		return nil
	}

	best := parse.MatchTitle(query, candidates)
	if best.Confidence == parse.ConfidenceNone {
		fmt.Println("no confident match")
		return nil
	}
	fmt.Printf("%s (score %.3f, %s confidence)\n", best.Title, best.Score, best.Confidence)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

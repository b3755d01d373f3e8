package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/pkg/parse"
)

// parseResultJSON is the JSON-friendly view of extracted metadata.
type parseResultJSON struct {
	Filename     string   `json:"filename"`
	Kind         string   `json:"kind"`
	Title        string   `json:"title,omitempty"`
	Year         int      `json:"year,omitempty"`
	Season       int      `json:"season,omitempty"`
	Episode      int      `json:"episode,omitempty"`
	Quality      string   `json:"quality,omitempty"`
	VideoCodec   string   `json:"video_codec,omitempty"`
	AudioCodec   string   `json:"audio_codec,omitempty"`
	Source       string   `json:"source,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Artist       string   `json:"artist,omitempty"`
	Album        string   `json:"album,omitempty"`
	TrackNumber  int      `json:"track,omitempty"`
	DiscNumber   int      `json:"disc,omitempty"`
	Author       string   `json:"author,omitempty"`
	Series       string   `json:"series,omitempty"`
	SeriesNumber int      `json:"series_number,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Region       string   `json:"region,omitempty"`
	Regions      []string `json:"regions,omitempty"`
	Revision     int      `json:"revision,omitempty"`
	Version      string   `json:"version,omitempty"`
	ReleaseCode  string   `json:"release_code,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>",
	Short: "Parse a media filename (local, no config needed)",
	Long: `Parse a media filename to extract metadata.

Examples:
  mediasort parse "The.Matrix.1999.2160p.BluRay.x265.mkv"
  mediasort parse --kind music "Artist - Album - 03 - Song.flac"
  mediasort parse --kind game --file roms.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&kindName, "kind", "video", "Media kind: video, music, book, game")
	parseCmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
	// Note: --json is inherited from root as persistent flag
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind()
	if err != nil {
		return err
	}
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	if inputFile != "" {
		names, err = readNameFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	} else if len(args) > 0 {
		names = []string{args[0]}
	} else {
		return fmt.Errorf("usage: mediasort parse <filename> or mediasort parse --file <filename>")
	}

	results := make([]*parse.Metadata, 0, len(names))
	for _, name := range names {
		results = append(results, parse.Extract(name, kind))
	}

	if jsonOutput {
		return outputParseJSON(kind, results)
	}
	for i, info := range results {
		if i > 0 {
			fmt.Println()
		}
		printMetadata(kind, info)
	}
	return nil
}

// readNameFile reads filenames from a file, one per line.
func readNameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func printMetadata(kind parse.Kind, info *parse.Metadata) {
	fmt.Printf("Filename:    %s\n", info.OriginalFilename)
	fmt.Printf("Kind:        %s\n", kind)
	fmt.Printf("Title:       %s\n", valueOrNone(info.Title))
	if info.Year > 0 {
		fmt.Printf("Year:        %d\n", info.Year)
	}

	switch kind {
	case parse.KindVideo:
		if info.IsEpisode() {
			fmt.Printf("Season:      %d\n", info.Season)
			fmt.Printf("Episode:     %d\n", info.Episode)
		}
		if info.Quality != "" {
			fmt.Printf("Quality:     %s\n", info.Quality)
		}
		if info.VideoCodec != "" {
			fmt.Printf("Video:       %s\n", info.VideoCodec)
		}
		if info.AudioCodec != "" {
			fmt.Printf("Audio:       %s\n", info.AudioCodec)
		}
		if info.Source != "" {
			fmt.Printf("Source:      %s\n", info.Source)
		}
		if len(info.Languages) > 0 {
			fmt.Printf("Languages:   %s\n", strings.Join(info.Languages, ", "))
		}
	case parse.KindMusic:
		if info.Artist != "" {
			fmt.Printf("Artist:      %s\n", info.Artist)
		}
		if info.Album != "" {
			fmt.Printf("Album:       %s\n", info.Album)
		}
		if info.TrackNumber > 0 {
			fmt.Printf("Track:       %d\n", info.TrackNumber)
		}
		if info.DiscNumber > 0 {
			fmt.Printf("Disc:        %d\n", info.DiscNumber)
		}
	case parse.KindBook:
		if info.Author != "" {
			fmt.Printf("Author:      %s\n", info.Author)
		}
		if info.Series != "" {
			fmt.Printf("Series:      %s #%d\n", info.Series, info.SeriesNumber)
		}
	case parse.KindGame:
		if info.Platform != "" {
			fmt.Printf("Platform:    %s\n", info.Platform)
		}
		if info.Region != "" {
			fmt.Printf("Region:      %s\n", info.Region)
		}
		if info.Revision > 0 {
			fmt.Printf("Revision:    %d\n", info.Revision)
		}
		if info.Version != "" {
			fmt.Printf("Version:     v%s\n", info.Version)
		}
		if info.ReleaseCode != "" {
			fmt.Printf("Code:        %s\n", info.ReleaseCode)
		}
		if len(info.Tags) > 0 {
			fmt.Printf("Tags:        %s\n", strings.Join(info.Tags, ", "))
		}
	}
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func outputParseJSON(kind parse.Kind, results []*parse.Metadata) error {
	out := make([]parseResultJSON, 0, len(results))
	for _, info := range results {
		out = append(out, parseResultJSON{
			Filename:     info.OriginalFilename,
			Kind:         kind.String(),
			Title:        info.Title,
			Year:         info.Year,
			Season:       info.Season,
			Episode:      info.Episode,
			Quality:      info.Quality,
			VideoCodec:   info.VideoCodec,
			AudioCodec:   info.AudioCodec,
			Source:       info.Source,
			Languages:    info.Languages,
			Artist:       info.Artist,
			Album:        info.Album,
			TrackNumber:  info.TrackNumber,
			DiscNumber:   info.DiscNumber,
			Author:       info.Author,
			Series:       info.Series,
			SeriesNumber: info.SeriesNumber,
			Platform:     info.Platform,
			Region:       info.Region,
			Regions:      info.Regions,
			Revision:     info.Revision,
			Version:      info.Version,
			ReleaseCode:  info.ReleaseCode,
			Tags:         info.Tags,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(out) == 1 {
		return enc.Encode(out[0])
	}
	return enc.Encode(out)
}

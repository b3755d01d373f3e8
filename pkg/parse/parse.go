// Package parse extracts structured metadata from media filenames.
//
// Matching is driven by ordered pattern tables (see tables.go). Within one
// category the leftmost occurrence in the filename wins; table order only
// decides canonicalization when two tokens start at the same offset.
// Extraction never fails: a category with no match is simply left at its
// zero value.
package parse

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects which extraction rules apply to a filename.
type Kind int

const (
	KindVideo Kind = iota
	KindMusic
	KindBook
	KindGame
)

// KindFromString resolves a kind name. Unknown names report ok=false.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "video":
		return KindVideo, true
	case "music":
		return KindMusic, true
	case "book":
		return KindBook, true
	case "game":
		return KindGame, true
	}
	return KindVideo, false
}

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindMusic:
		return "music"
	case KindBook:
		return "book"
	case KindGame:
		return "game"
	default:
		return "unknown"
	}
}

// Metadata holds everything extracted from a single filename. Fields not
// found in the name stay at their zero value. A Metadata is built once per
// filename and read-only afterwards.
type Metadata struct {
	OriginalFilename string
	Extension        string // lowercase, with dot

	Title string
	Year  int

	// Video
	Season  int
	Episode int

	Quality    string
	VideoCodec string
	AudioCodec string
	Source     string
	Languages  []string

	// Music
	Artist      string
	Album       string
	TrackNumber int
	DiscNumber  int

	// Book
	Author       string
	Series       string
	SeriesNumber int

	// Game
	Platform    string
	Region      string
	Regions     []string
	Revision    int
	Version     string
	ReleaseCode string
	Tags        []string

	// ResidualTail is the trailing text that followed the last structural
	// token (episode code, year, track number). Kept verbatim so an
	// extraction can be audited against its input.
	ResidualTail string
}

// IsEpisode reports whether the filename carried an episode code.
func (m *Metadata) IsEpisode() bool { return m.Episode > 0 }

var (
	episodeRe    = regexp.MustCompile(`(?i)^(?P<title>.*?)S(?P<season>\d{1,2})E(?P<episode>\d{1,3})(?P<rest>.*)$`)
	altEpisodeRe = regexp.MustCompile(`(?i)^(?P<title>.*?)[.\s_-]+(?P<season>\d{1,2})x(?P<episode>\d{2})(?P<rest>.*)$`)
	yearRe       = regexp.MustCompile(`\((\d{4})\)|\b(19\d{2}|20\d{2})\b`)
)

// Extract parses filename according to the rules for kind.
func Extract(filename string, kind Kind) *Metadata {
	m := &Metadata{
		OriginalFilename: filename,
		Extension:        strings.ToLower(filepath.Ext(filename)),
	}

	switch kind {
	case KindMusic:
		extractMusic(m, filename)
	case KindBook:
		extractBook(m, filename)
	case KindGame:
		extractGame(m, filename)
	default:
		extractVideo(m, filename)
	}
	return m
}

func extractVideo(m *Metadata, filename string) {
	rest := ""
	if g := findNamed(episodeRe, filename); g != nil {
		// The title before an SxxEyy code is only whitespace-trimmed, not
		// cleaned: "MyShow.S01E05.720p.mkv" keeps the trailing dot.
		m.Title = strings.TrimSpace(g["title"])
		m.Season = atoi(g["season"])
		m.Episode = atoi(g["episode"])
		rest = g["rest"]
	} else if g := findNamed(altEpisodeRe, filename); g != nil {
		m.Title = TidyTitle(g["title"])
		m.Season = atoi(g["season"])
		m.Episode = atoi(g["episode"])
		rest = g["rest"]
	} else {
		m.Year = ExtractYear(filename)
		if m.Year > 0 {
			before, _, _ := strings.Cut(filename, strconv.Itoa(m.Year))
			m.Title = TidyTitle(before)
		} else {
			m.Title = TidyTitle(strings.TrimSuffix(filename, m.Extension))
		}
		rest = filename
	}

	// An episode code without a season marker defaults to season one; the
	// extractor never emits an episode with no season context.
	if m.Episode > 0 && m.Season == 0 {
		m.Season = 1
	}

	if rest != "" {
		if m.Year == 0 {
			m.Year = ExtractYear(rest)
		}
		applyTokenTables(m, rest)
		m.ResidualTail = rest
	}
}

// applyTokenTables fills the category fields from s. Categories are
// independent: one filename can hit one entry of every table.
func applyTokenTables(m *Metadata, s string) {
	if v, _, ok := QualityTable.Match(s); ok {
		m.Quality = v
	}
	if v, _, ok := VideoCodecTable.Match(s); ok {
		m.VideoCodec = v
	}
	if v, _, ok := AudioCodecTable.Match(s); ok {
		m.AudioCodec = v
	}
	if v, _, ok := SourceTable.Match(s); ok {
		m.Source = v
	}
	m.Languages = LanguageTable.MatchAll(s)
}

// ExtractYear returns a plausible release year found in text, or zero.
// Parenthesized years are preferred over bare ones.
func ExtractYear(text string) int {
	match := yearRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	raw := match[1]
	if raw == "" {
		raw = match[2]
	}
	year := atoi(raw)
	if year < 1900 || year > 2100 {
		return 0
	}
	return year
}

func findNamed(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}
	return groups
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

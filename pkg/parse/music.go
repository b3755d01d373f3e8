package parse

import (
	"regexp"
	"strings"
)

// Track filename patterns, most specific first. The first pattern that
// matches decides the interpretation.
var (
	trackFullRe = regexp.MustCompile(`^(?P<artist>[^-]+?)\s*-\s*(?P<album>[^-]+?)\s*-\s*(?P<track>\d+)\s*-\s*(?P<title>.+)$`)
	trackDiscRe = regexp.MustCompile(`(?i)^(?:CD|Disc|Disk)\s*(?P<disc>\d+)[-\s]*(?P<track>\d+)[.\s-]+(?P<title>.+)$`)
	trackNumRe  = regexp.MustCompile(`^(?P<track>\d+)[.\s-]+(?P<title>.+)$`)
	trackWordRe = regexp.MustCompile(`(?i)^Track\s+(?P<track>\d+)\s+(?P<title>.+)$`)
)

func extractMusic(m *Metadata, filename string) {
	stem := strings.TrimSuffix(filename, m.Extension)

	if g := findNamed(trackFullRe, stem); g != nil {
		m.Artist = strings.TrimSpace(g["artist"])
		m.Album = strings.TrimSpace(g["album"])
		m.TrackNumber = atoi(g["track"])
		m.Title = strings.TrimSpace(g["title"])
		return
	}
	if g := findNamed(trackDiscRe, stem); g != nil {
		m.DiscNumber = atoi(g["disc"])
		m.TrackNumber = atoi(g["track"])
		m.Title = strings.TrimSpace(g["title"])
		return
	}
	if g := findNamed(trackNumRe, stem); g != nil {
		m.TrackNumber = atoi(g["track"])
		m.Title = strings.TrimSpace(g["title"])
		return
	}
	if g := findNamed(trackWordRe, stem); g != nil {
		m.TrackNumber = atoi(g["track"])
		m.Title = strings.TrimSpace(g["title"])
		return
	}

	m.Title = strings.TrimSpace(stem)
}

// ParseTrackNumber reads a track or disc number that may come in "5/12"
// form, as audio tags commonly store it. Returns zero when unparseable.
func ParseTrackNumber(value string) int {
	head, _, _ := strings.Cut(value, "/")
	return atoi(head)
}

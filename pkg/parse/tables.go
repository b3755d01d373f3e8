package parse

import "strings"

// Entry maps a raw filename token to its canonical value.
type Entry struct {
	Token     string
	Canonical string
}

// Table is an ordered list of entries. Order is part of the contract:
// specific tokens come before the generic ones they contain, so a table
// scan can stop at the first hit at any given offset.
type Table []Entry

// QualityTable canonicalizes resolution tokens.
var QualityTable = Table{
	{"2160p", "2160p"},
	{"4k", "2160p"},
	{"uhd", "2160p"},
	{"1080p", "1080p"},
	{"720p", "720p"},
	{"480p", "480p"},
	{"hd", "720p"},
	{"sd", "480p"},
}

// VideoCodecTable canonicalizes video codec tokens.
var VideoCodecTable = Table{
	{"x265", "H265"},
	{"h265", "H265"},
	{"h.265", "H265"},
	{"hevc", "H265"},
	{"x264", "H264"},
	{"h264", "H264"},
	{"h.264", "H264"},
	{"avc", "H264"},
	{"av1", "AV1"},
	{"vp9", "VP9"},
	{"xvid", "XVID"},
	{"divx", "DIVX"},
}

// AudioCodecTable canonicalizes audio codec tokens.
var AudioCodecTable = Table{
	{"atmos", "ATMOS"},
	{"truehd", "TRUEHD"},
	{"dts-hd", "DTSHD"},
	{"dts", "DTS"},
	{"eac3", "EAC3"},
	{"dd+", "EAC3"},
	{"dd5.1", "DD51"},
	{"ac3", "AC3"},
	{"flac", "FLAC"},
	{"aac", "AAC"},
	{"mp3", "MP3"},
}

// SourceTable canonicalizes content source tokens. REMUX variants must
// stay ahead of the plain BluRay tokens they contain.
var SourceTable = Table{
	{"bluray remux", "REMUX"},
	{"blu-ray remux", "REMUX"},
	{"remux", "REMUX"},
	{"bluray", "BLURAY"},
	{"blu-ray", "BLURAY"},
	{"bdrip", "BLURAY"},
	{"brrip", "BLURAY"},
	{"web-dl", "WEBDL"},
	{"webdl", "WEBDL"},
	{"webrip", "WEBRIP"},
	{"web-rip", "WEBRIP"},
	{"hdtv", "HDTV"},
	{"dvdrip", "DVD"},
	{"dvd", "DVD"},
}

// LanguageTable maps language markers to ISO-style codes. TRUEFRENCH and
// VOSTFR precede FRENCH so the longer marker canonicalizes the match.
var LanguageTable = Table{
	{"truefrench", "fr"},
	{"vostfr", "fr-sub"},
	{"vff", "fr"},
	{"vfq", "fr-qc"},
	{"french", "fr"},
	{"multi", "multi"},
	{"english", "en"},
	{"german", "de"},
	{"spanish", "es"},
	{"italian", "it"},
}

// Match scans s for the table's tokens, case-insensitively. The leftmost
// occurrence in s wins; at equal offsets the earlier table entry wins.
// Returns the canonical value, the offset of the match, and whether any
// token matched.
func (t Table) Match(s string) (string, int, bool) {
	lower := strings.ToLower(s)
	best := -1
	canonical := ""
	for _, e := range t {
		idx := strings.Index(lower, e.Token)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			canonical = e.Canonical
		}
	}
	if best < 0 {
		return "", -1, false
	}
	return canonical, best, true
}

// MatchAll returns every distinct canonical value whose token occurs in s,
// ordered by first occurrence in s.
func (t Table) MatchAll(s string) []string {
	lower := strings.ToLower(s)
	type hit struct {
		canonical string
		offset    int
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, e := range t {
		idx := strings.Index(lower, e.Token)
		if idx < 0 || seen[e.Canonical] {
			continue
		}
		seen[e.Canonical] = true
		hits = append(hits, hit{e.Canonical, idx})
	}
	if len(hits) == 0 {
		return nil
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].offset < hits[j-1].offset; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.canonical
	}
	return out
}

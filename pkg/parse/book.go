package parse

import (
	"regexp"
	"strings"
	"unicode"
)

// Book filename patterns, most specific first.
var (
	bookSeriesRe = regexp.MustCompile(`^(?P<author>[^-\[]+?)\s*-\s*\[(?P<series>[^\]]+?)\s+(?P<number>\d+)\]\s*-\s*(?P<title>.+)$`)
	bookYearRe   = regexp.MustCompile(`^(?P<author>[^-]+?)\s*-\s*(?P<title>.+?)\s*\((?P<year>\d{4})\)$`)
)

func extractBook(m *Metadata, filename string) {
	stem := strings.TrimSuffix(filename, m.Extension)

	if g := findNamed(bookSeriesRe, stem); g != nil {
		m.Author = strings.TrimSpace(g["author"])
		m.Series = strings.TrimSpace(g["series"])
		m.SeriesNumber = atoi(g["number"])
		m.Title = strings.TrimSpace(g["title"])
		return
	}
	if g := findNamed(bookYearRe, stem); g != nil {
		m.Author = strings.TrimSpace(g["author"])
		m.Title = strings.TrimSpace(g["title"])
		m.Year = atoi(g["year"])
		return
	}

	// "A - B": decide which half is the author. If the left half does not
	// look like a person's name, assume "Title - Author" ordering.
	if left, right, ok := strings.Cut(stem, "-"); ok {
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if left != "" && right != "" {
			if looksLikeAuthor(left) {
				m.Author = left
				m.Title = right
			} else {
				m.Title = left
				m.Author = right
			}
			return
		}
	}

	m.Title = strings.TrimSpace(stem)
}

// looksLikeAuthor reports whether text resembles a person's name: two to
// four words, each capitalized.
func looksLikeAuthor(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

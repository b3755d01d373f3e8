package parse

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TidyTitle turns a raw filename fragment into a display title: dots and
// underscores become spaces, whitespace runs collapse, case is preserved.
func TidyTitle(s string) string {
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// romanNumeralRe matches Roman numerals II-IX preceded by a space.
// Standalone "I" and "X" are excluded: they are too often part of a real
// title ("I Robot", "American History X"), and a numeral at the start of
// the string is left alone for the same reason.
var romanNumeralRe = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanValues = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

func arabizeRomanNumerals(s string) string {
	return romanNumeralRe.ReplaceAllStringFunc(s, func(match string) string {
		if arabic, ok := romanValues[strings.ToLower(strings.TrimSpace(match))]; ok {
			return " " + arabic
		}
		return match
	})
}

// CleanTitle normalizes a title for fuzzy comparison: lowercase, Roman
// numerals arabized, accents stripped, leading articles removed, all
// punctuation dropped, whitespace collapsed. Not suitable for display.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = arabizeRomanNumerals(s)
	s = stripAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitled titles ("Léon: The Professional") lose the article on each
	// colon-separated part.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, article) {
			return strings.TrimPrefix(s, article)
		}
	}
	return s
}

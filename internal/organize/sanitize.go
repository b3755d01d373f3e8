// Package organize moves, renames, and journals media files safely.
package organize

import (
	"path/filepath"
	"regexp"
	"strings"
)

// forbidden is the set of characters not allowed in filenames on common
// filesystems.
const forbidden = `<>:"/\|?*`

var multiSpace = regexp.MustCompile(` {2,}`)

// Sanitize makes name safe to use as a path component. Every forbidden
// character becomes a single underscore, so token boundaries survive, and
// runs of two or more spaces collapse to one. Leading and trailing
// whitespace is left alone. Total and idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(forbidden, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return multiSpace.ReplaceAllString(b.String(), " ")
}

// CleanFilename replaces each forbidden character with exactly one
// underscore, without collapsing consecutive replacements, then trims
// outer whitespace and any dots left dangling at the end of the stem:
// "file/name|bad?.txt" -> "file_name_bad_.txt".
func CleanFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(forbidden, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	ext := filepath.Ext(cleaned)
	stem := strings.TrimSuffix(cleaned, ext)
	return strings.TrimRight(stem, ".") + ext
}

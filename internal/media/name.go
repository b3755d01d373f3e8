package media

import (
	"fmt"
	"strconv"

	"github.com/vmunix/mediasort/internal/organize"
)

// BuildName returns the canonical display name for a record. Every
// content type computes the shared base form and substitutes only the
// piece it owns, selected by a switch over the tag rather than an
// override chain. Output is sanitized and safe as a path component.
func BuildName(r *Record) string {
	switch r.ContentType {
	case ContentEpisode:
		return sanitized(episodeName(r))
	case ContentAlbum:
		return sanitized(albumName(r))
	case ContentTrack:
		return sanitized(fmt.Sprintf("%02d - %s", r.TrackNumber, r.Title))
	case ContentEbook:
		name := baseName(r)
		if r.FileFormat != "" {
			name += "." + r.FileFormat
		}
		return sanitized(name)
	case ContentComic:
		// Comics swap the primary identifier for "Series #NNN" when both
		// pieces are known, else fall back to the base form.
		if r.Series != "" && r.IssueNumber > 0 {
			return sanitized(fmt.Sprintf("%s #%03d - %s", r.Series, r.IssueNumber, r.Title))
		}
		return sanitized(baseName(r))
	case ContentGame:
		return sanitized(gameName(r))
	case ContentDLC:
		if r.BaseGame != "" {
			return sanitized(r.BaseGame + " - " + r.Title)
		}
		return sanitized(gameName(r))
	default:
		return sanitized(baseName(r))
	}
}

// baseName is the shared "{primary} - {title} (year)" form. The primary
// identifier depends on the kind: author for books, artist for music.
// Missing pieces are simply omitted.
func baseName(r *Record) string {
	primary := ""
	switch r.ContentType.Kind() {
	case KindBook:
		primary = r.Author
	case KindMusic:
		primary = r.Artist
	}

	name := r.Title
	if primary != "" {
		name = primary + " - " + name
	}
	if r.ReleaseYear > 0 {
		name += " (" + itoa(r.ReleaseYear) + ")"
	}
	return name
}

func episodeName(r *Record) string {
	series := r.SeriesName
	if series == "" {
		series = r.Title
	}
	code := fmt.Sprintf("S%02dE%02d", r.SeasonNumber, r.EpisodeNumber)
	if r.EpisodeTitle != "" {
		return fmt.Sprintf("%s - %s - %s", series, code, r.EpisodeTitle)
	}
	return series + " - " + code
}

func albumName(r *Record) string {
	name := r.Title
	if r.Artist != "" {
		name = r.Artist + " - " + name
	}
	if r.ReleaseYear > 0 {
		name += " (" + itoa(r.ReleaseYear) + ")"
	}
	return name
}

func gameName(r *Record) string {
	name := r.Title
	if r.ReleaseYear > 0 {
		name += " (" + itoa(r.ReleaseYear) + ")"
	}
	if r.Platform != "" {
		name += " [" + r.Platform + "]"
	}
	return name
}

// FormatDuration renders an audiobook running time as H:MM:SS with
// unpadded hours. Non-positive durations render as 0:00:00.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0:00:00"
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

func seasonFolder(n int) string {
	return fmt.Sprintf("Season %02d", n)
}

func sanitized(s string) string {
	return organize.Sanitize(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

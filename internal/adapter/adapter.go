// Package adapter normalizes raw metadata-provider payloads into the
// uniform shape the rest of the pipeline expects. Providers disagree on
// field names (movies use "title", tv and albums use "name") and on
// which collection fields they bother to send; the adapter papers over
// both without dropping anything a provider did send.
package adapter

import (
	"github.com/spf13/cast"

	"github.com/vmunix/mediasort/internal/media"
)

// AdaptSearch normalizes a provider's search result list for one content
// type. Each item keeps every key the provider sent; the adapter only
// adds the media_type tag, the title/name alias, and missing collection
// defaults. The input maps are not modified.
func AdaptSearch(ct media.ContentType, items []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, adaptOne(ct, item))
	}
	return out
}

// AdaptDetails normalizes a single details payload the same way
// AdaptSearch normalizes each list item.
func AdaptDetails(ct media.ContentType, item map[string]any) map[string]any {
	return adaptOne(ct, item)
}

func adaptOne(ct media.ContentType, item map[string]any) map[string]any {
	out := make(map[string]any, len(item)+2)
	for k, v := range item {
		out[k] = v
	}

	out["media_type"] = string(ct)
	aliasTitle(out)
	fillDefaults(ct, out)
	return out
}

// aliasTitle reconciles the title/name split. Movie-shaped payloads are
// keyed on "title" and fall back to "name" when a provider sent only
// that; name-keyed payloads (tv, albums, artists) gain a "title" alias
// when absent. Either way an existing "title" is never overwritten, and
// "name" is never backfilled from "title".
func aliasTitle(item map[string]any) {
	if _, ok := item["title"]; ok {
		return
	}
	if name, ok := item["name"]; ok {
		item["title"] = cast.ToString(name)
	}
}

// fillDefaults adds the collection fields consumers index into without
// checking, so a sparse payload never panics a caller. Present values
// are kept as sent.
func fillDefaults(ct media.ContentType, item map[string]any) {
	switch ct.Kind() {
	case media.KindVideo:
		if ct == media.ContentTVSeries {
			ensureSlice(item, "seasons")
		}
	case media.KindMusic:
		if ct == media.ContentAlbum {
			ensureSlice(item, "tracks")
		}
	case media.KindBook:
		ensureSlice(item, "authors")
	case media.KindGame:
		ensureSlice(item, "platforms")
	}
}

func ensureSlice(item map[string]any, key string) {
	if _, ok := item[key]; !ok {
		item[key] = []any{}
	}
}

// Year extracts a release year from whichever field the provider used:
// a numeric "year", or the leading year of a "release_date" /
// "first_air_date" string.
func Year(item map[string]any) int {
	if y := cast.ToInt(item["year"]); y > 0 {
		return y
	}
	for _, key := range []string{"release_date", "first_air_date", "release_year"} {
		s := cast.ToString(item[key])
		if len(s) >= 4 {
			if y := cast.ToInt(s[:4]); y > 0 {
				return y
			}
		}
	}
	return 0
}

// Title returns the normalized display title of an adapted item.
func Title(item map[string]any) string {
	if t := cast.ToString(item["title"]); t != "" {
		return t
	}
	return cast.ToString(item["name"])
}

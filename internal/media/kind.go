// Package media defines media kinds, canonical records, naming rules,
// and the per-kind file operations used to organize a library.
package media

import "github.com/vmunix/mediasort/pkg/parse"

// Kind is the top-level classification deciding which pattern tables and
// naming templates apply.
type Kind = parse.Kind

const (
	KindVideo = parse.KindVideo
	KindMusic = parse.KindMusic
	KindBook  = parse.KindBook
	KindGame  = parse.KindGame
)

// ContentType is the finer-grained tag used for naming and adaptation.
type ContentType string

const (
	ContentMovie       ContentType = "movie"
	ContentTVSeries    ContentType = "tv_series"
	ContentEpisode     ContentType = "episode"
	ContentDocumentary ContentType = "documentary"

	ContentAlbum    ContentType = "album"
	ContentTrack    ContentType = "track"
	ContentArtist   ContentType = "artist"
	ContentPlaylist ContentType = "playlist"

	ContentBook      ContentType = "book"
	ContentAudiobook ContentType = "audiobook"
	ContentEbook     ContentType = "ebook"
	ContentComic     ContentType = "comic"

	ContentGame ContentType = "game"
	ContentDLC  ContentType = "dlc"
)

// Kind returns the media kind a content type belongs to.
func (c ContentType) Kind() Kind {
	switch c {
	case ContentAlbum, ContentTrack, ContentArtist, ContentPlaylist:
		return KindMusic
	case ContentBook, ContentAudiobook, ContentEbook, ContentComic:
		return KindBook
	case ContentGame, ContentDLC:
		return KindGame
	default:
		return KindVideo
	}
}

package media

import (
	"fmt"

	"github.com/vmunix/mediasort/internal/organize"
	"github.com/vmunix/mediasort/pkg/parse"
)

var musicExtensions = []string{
	".mp3", ".flac", ".wav", ".m4a", ".aac", ".ogg", ".opus",
	".wma", ".ape", ".alac", ".aiff", ".dsf",
}

// MusicOps handles albums and tracks.
type MusicOps struct {
	trackTemplate string
}

// NewMusicOps creates music operations. An empty template uses the
// default "{track:02} - {title}" form.
func NewMusicOps(trackTemplate string) *MusicOps {
	if trackTemplate == "" {
		trackTemplate = DefaultTrackTemplate
	}
	return &MusicOps{trackTemplate: trackTemplate}
}

func (o *MusicOps) Kind() Kind { return KindMusic }

func (o *MusicOps) SupportedExtensions() []string { return musicExtensions }

func (o *MusicOps) FindFiles(root string) ([]string, error) {
	return findByExtension(root, musicExtensions, false)
}

// GenerateNewFilename renumbers a track to "NN - Title". The track number
// and title come from the filename; a record fills whichever of the two
// the filename lacks. With neither, the sanitized original passes
// through.
func (o *MusicOps) GenerateNewFilename(rec *Record, original string) string {
	info := parse.Extract(original, parse.KindMusic)

	track := info.TrackNumber
	title := info.Title
	if rec != nil {
		if track == 0 {
			track = rec.TrackNumber
		}
		if title == "" {
			title = rec.Title
		}
	}

	switch {
	case track > 0 && title != "":
		name := ApplyTemplate(o.trackTemplate, map[string]any{
			"track": track,
			"title": title,
		})
		return organize.Sanitize(name) + info.Extension
	case title != "":
		return organize.Sanitize(title) + info.Extension
	default:
		return organize.CleanFilename(original)
	}
}

// TrackFullName renders "Artist - Title" for display listings.
func TrackFullName(artist, title string) string {
	if artist == "" {
		return title
	}
	return fmt.Sprintf("%s - %s", artist, title)
}

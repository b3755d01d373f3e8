package media

import (
	"strings"

	"github.com/vmunix/mediasort/internal/organize"
	"github.com/vmunix/mediasort/pkg/parse"
)

var videoExtensions = []string{
	".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm",
	".m4v", ".mpg", ".mpeg", ".3gp", ".ogv", ".ts", ".m2ts",
}

// VideoOps handles movies, series, and documentaries.
type VideoOps struct {
	movieTemplate   string
	episodeTemplate string
}

// NewVideoOps creates video operations. Empty templates use defaults.
func NewVideoOps(movieTemplate, episodeTemplate string) *VideoOps {
	if movieTemplate == "" {
		movieTemplate = DefaultMovieTemplate
	}
	if episodeTemplate == "" {
		episodeTemplate = DefaultEpisodeTemplate
	}
	return &VideoOps{movieTemplate: movieTemplate, episodeTemplate: episodeTemplate}
}

func (o *VideoOps) Kind() Kind { return KindVideo }

func (o *VideoOps) SupportedExtensions() []string { return videoExtensions }

func (o *VideoOps) FindFiles(root string) ([]string, error) {
	return findByExtension(root, videoExtensions, true)
}

// GenerateNewFilename renames an episode file to the configured episode
// template and a movie file to the movie template. Without a record the
// sanitized original name passes through.
func (o *VideoOps) GenerateNewFilename(rec *Record, original string) string {
	if rec == nil {
		return organize.CleanFilename(original)
	}

	info := parse.Extract(original, parse.KindVideo)

	if info.IsEpisode() && (rec.ContentType == ContentTVSeries || rec.ContentType == ContentEpisode) {
		title := rec.SeriesName
		if title == "" {
			title = rec.Title
		}
		name := ApplyTemplate(o.episodeTemplate, map[string]any{
			"title":         title,
			"season":        info.Season,
			"episode":       info.Episode,
			"episode_title": rec.EpisodeTitle,
		})
		return organize.Sanitize(collapseSpaces(name)) + info.Extension
	}

	name := ApplyTemplate(o.movieTemplate, map[string]any{
		"title":   rec.Title,
		"year":    rec.ReleaseYear,
		"quality": info.Quality,
	})
	// A record without a year leaves "( 0 )" style husks behind.
	name = strings.ReplaceAll(name, "(0)", "")
	name = strings.ReplaceAll(name, "()", "")
	return organize.Sanitize(collapseSpaces(name)) + info.Extension
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

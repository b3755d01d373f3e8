package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildName(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "movie",
			rec:  Record{ContentType: ContentMovie, Title: "The Matrix", ReleaseYear: 1999},
			want: "The Matrix (1999)",
		},
		{
			name: "movie without year",
			rec:  Record{ContentType: ContentMovie, Title: "Unknown Film"},
			want: "Unknown Film",
		},
		{
			name: "episode",
			rec: Record{
				ContentType: ContentEpisode, SeriesName: "Breaking Bad",
				SeasonNumber: 1, EpisodeNumber: 5, EpisodeTitle: "Gray Matter",
			},
			want: "Breaking Bad - S01E05 - Gray Matter",
		},
		{
			name: "episode without title",
			rec: Record{
				ContentType: ContentEpisode, SeriesName: "Breaking Bad",
				SeasonNumber: 2, EpisodeNumber: 13,
			},
			want: "Breaking Bad - S02E13",
		},
		{
			name: "album",
			rec:  Record{ContentType: ContentAlbum, Artist: "Muse", Title: "Absolution", ReleaseYear: 2003},
			want: "Muse - Absolution (2003)",
		},
		{
			name: "track",
			rec:  Record{ContentType: ContentTrack, TrackNumber: 3, Title: "Time Is Running Out"},
			want: "03 - Time Is Running Out",
		},
		{
			name: "book",
			rec:  Record{ContentType: ContentBook, Author: "Andy Weir", Title: "Project Hail Mary", ReleaseYear: 2021},
			want: "Andy Weir - Project Hail Mary (2021)",
		},
		{
			name: "ebook carries its format",
			rec:  Record{ContentType: ContentEbook, Author: "Andy Weir", Title: "The Martian", FileFormat: "epub"},
			want: "Andy Weir - The Martian.epub",
		},
		{
			name: "comic with issue",
			rec:  Record{ContentType: ContentComic, Series: "Sandman", IssueNumber: 7, Title: "Dream Country"},
			want: "Sandman #007 - Dream Country",
		},
		{
			name: "comic without issue falls back",
			rec:  Record{ContentType: ContentComic, Title: "Watchmen", ReleaseYear: 1986},
			want: "Watchmen (1986)",
		},
		{
			name: "game",
			rec:  Record{ContentType: ContentGame, Title: "Gran Turismo", ReleaseYear: 1997, Platform: "PlayStation"},
			want: "Gran Turismo (1997) [PlayStation]",
		},
		{
			name: "dlc prefixes base game",
			rec:  Record{ContentType: ContentDLC, BaseGame: "The Witcher 3", Title: "Blood and Wine"},
			want: "The Witcher 3 - Blood and Wine",
		},
		{
			name: "forbidden characters sanitized",
			rec:  Record{ContentType: ContentMovie, Title: "What/If: Part 1"},
			want: "What_If_ Part 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildName(&tt.rec))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00:00"},
		{-5, "0:00:00"},
		{59, "0:00:59"},
		{3661, "1:01:01"},
		{45296, "12:34:56"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}

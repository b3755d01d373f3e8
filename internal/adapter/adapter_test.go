package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/mediasort/internal/media"
)

func TestAdaptSearch_Movie(t *testing.T) {
	items := []map[string]any{
		{"title": "The Matrix", "release_date": "1999-03-31"},
		{"name": "Untitled Project"},
	}

	got := AdaptSearch(media.ContentMovie, items)
	require.Len(t, got, 2)

	assert.Equal(t, "movie", got[0]["media_type"])
	assert.Equal(t, "The Matrix", got[0]["title"])
	assert.Equal(t, "1999-03-31", got[0]["release_date"])

	assert.Equal(t, "Untitled Project", got[1]["title"], "title aliased from name")
	assert.Equal(t, "Untitled Project", got[1]["name"])
}

func TestAdaptSearch_TitleNeverOverwritten(t *testing.T) {
	got := AdaptSearch(media.ContentMovie, []map[string]any{
		{"title": "Release Title", "name": "Internal Name"},
	})
	assert.Equal(t, "Release Title", got[0]["title"])
	assert.Equal(t, "Internal Name", got[0]["name"])
}

func TestAdaptSearch_NameNotBackfilled(t *testing.T) {
	got := AdaptSearch(media.ContentTVSeries, []map[string]any{
		{"title": "Only Title"},
	})
	_, hasName := got[0]["name"]
	assert.False(t, hasName, "name must not be invented from title")
}

func TestAdaptSearch_DoesNotMutateInput(t *testing.T) {
	item := map[string]any{"name": "Dark"}
	AdaptSearch(media.ContentTVSeries, []map[string]any{item})

	assert.Equal(t, map[string]any{"name": "Dark"}, item)
}

func TestAdaptDetails_CollectionDefaults(t *testing.T) {
	tests := []struct {
		name string
		ct   media.ContentType
		key  string
	}{
		{"series gets seasons", media.ContentTVSeries, "seasons"},
		{"album gets tracks", media.ContentAlbum, "tracks"},
		{"book gets authors", media.ContentBook, "authors"},
		{"audiobook gets authors", media.ContentAudiobook, "authors"},
		{"game gets platforms", media.ContentGame, "platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdaptDetails(tt.ct, map[string]any{"name": "X"})
			assert.Equal(t, []any{}, got[tt.key])
		})
	}
}

func TestAdaptDetails_PresentCollectionsKept(t *testing.T) {
	seasons := []any{map[string]any{"season_number": 1}}
	got := AdaptDetails(media.ContentTVSeries, map[string]any{
		"name":    "Dark",
		"seasons": seasons,
	})
	assert.Equal(t, seasons, got["seasons"])
}

func TestAdaptDetails_MovieHasNoSeasons(t *testing.T) {
	got := AdaptDetails(media.ContentMovie, map[string]any{"title": "Heat"})
	_, ok := got["seasons"]
	assert.False(t, ok)
}

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		want int
	}{
		{"numeric year", map[string]any{"year": 1999}, 1999},
		{"string year", map[string]any{"year": "2003"}, 2003},
		{"release_date", map[string]any{"release_date": "1994-10-14"}, 1994},
		{"first_air_date", map[string]any{"first_air_date": "2017-12-01"}, 2017},
		{"release_year", map[string]any{"release_year": "1997"}, 1997},
		{"year beats date", map[string]any{"year": 2001, "release_date": "1999-01-01"}, 2001},
		{"short date ignored", map[string]any{"release_date": "99"}, 0},
		{"nothing", map[string]any{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Year(tt.item))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Heat", Title(map[string]any{"title": "Heat"}))
	assert.Equal(t, "Dark", Title(map[string]any{"name": "Dark"}))
	assert.Equal(t, "A", Title(map[string]any{"title": "A", "name": "B"}))
	assert.Equal(t, "", Title(map[string]any{}))
}

package parse

import "testing"

func TestExtractMusic(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		artist string
		album  string
		track  int
		disc   int
		title  string
	}{
		{
			name:   "artist album track title",
			input:  "Daft Punk - Discovery - 03 - Digital Love.flac",
			artist: "Daft Punk",
			album:  "Discovery",
			track:  3,
			title:  "Digital Love",
		},
		{
			name:  "disc and track",
			input: "CD2-05 Some Song.mp3",
			disc:  2,
			track: 5,
			title: "Some Song",
		},
		{
			name:  "track dash title",
			input: "05 - Track Name.mp3",
			track: 5,
			title: "Track Name",
		},
		{
			name:  "track dot title",
			input: "12. Another Song.ogg",
			track: 12,
			title: "Another Song",
		},
		{
			name:  "track word form",
			input: "Track 7 Title.mp3",
			track: 7,
			title: "Title",
		},
		{
			name:  "bare title",
			input: "Some Song.mp3",
			title: "Some Song",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.input, KindMusic)
			if m.Artist != tt.artist {
				t.Errorf("Artist = %q, want %q", m.Artist, tt.artist)
			}
			if m.Album != tt.album {
				t.Errorf("Album = %q, want %q", m.Album, tt.album)
			}
			if m.TrackNumber != tt.track {
				t.Errorf("TrackNumber = %d, want %d", m.TrackNumber, tt.track)
			}
			if m.DiscNumber != tt.disc {
				t.Errorf("DiscNumber = %d, want %d", m.DiscNumber, tt.disc)
			}
			if m.Title != tt.title {
				t.Errorf("Title = %q, want %q", m.Title, tt.title)
			}
		})
	}
}

func TestParseTrackNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"5/12", 5},
		{"05", 5},
		{"", 0},
		{"x", 0},
	}

	for _, tt := range tests {
		if got := ParseTrackNumber(tt.input); got != tt.want {
			t.Errorf("ParseTrackNumber(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

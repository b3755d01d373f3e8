package parse

import "testing"

func TestExtract_Episode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		title   string
		season  int
		episode int
	}{
		// The title before an SxxEyy code keeps its trailing separator.
		{"dotted", "MyShow.S01E05.720p.mkv", "MyShow.", 1, 5},
		{"spaced", "Show Name S02E10 1080p WEB-DL x265.mkv", "Show Name", 2, 10},
		{"lowercase code", "show name s03e07 hdtv.mkv", "show name", 3, 7},
		{"alternate NxNN form", "show.name.2x07.webrip.mkv", "show name", 2, 7},
		{"three digit episode", "Anime.S01E105.mkv", "Anime.", 1, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.input, KindVideo)
			if m.Title != tt.title {
				t.Errorf("Title = %q, want %q", m.Title, tt.title)
			}
			if m.Season != tt.season || m.Episode != tt.episode {
				t.Errorf("S%dE%d, want S%dE%d", m.Season, m.Episode, tt.season, tt.episode)
			}
			if !m.IsEpisode() {
				t.Error("IsEpisode() = false")
			}
		})
	}
}

func TestExtract_EpisodeTokens(t *testing.T) {
	m := Extract("Show Name S02E10 1080p WEB-DL x265.mkv", KindVideo)

	if m.Quality != "1080p" {
		t.Errorf("Quality = %q, want 1080p", m.Quality)
	}
	if m.Source != "WEBDL" {
		t.Errorf("Source = %q, want WEBDL", m.Source)
	}
	if m.VideoCodec != "H265" {
		t.Errorf("VideoCodec = %q, want H265", m.VideoCodec)
	}
	if m.ResidualTail != " 1080p WEB-DL x265.mkv" {
		t.Errorf("ResidualTail = %q", m.ResidualTail)
	}
}

func TestExtract_Movie(t *testing.T) {
	m := Extract("The.Matrix.1999.2160p.BluRay.x265.mkv", KindVideo)

	if m.Title != "The Matrix" {
		t.Errorf("Title = %q, want %q", m.Title, "The Matrix")
	}
	if m.Year != 1999 {
		t.Errorf("Year = %d, want 1999", m.Year)
	}
	if m.Quality != "2160p" {
		t.Errorf("Quality = %q, want 2160p", m.Quality)
	}
	if m.Source != "BLURAY" {
		t.Errorf("Source = %q, want BLURAY", m.Source)
	}
	if m.VideoCodec != "H265" {
		t.Errorf("VideoCodec = %q, want H265", m.VideoCodec)
	}
	if m.IsEpisode() {
		t.Error("IsEpisode() = true for a movie")
	}
}

func TestExtract_MovieWithoutYear(t *testing.T) {
	m := Extract("Some.Movie.Name.mkv", KindVideo)

	if m.Title != "Some Movie Name" {
		t.Errorf("Title = %q, want %q", m.Title, "Some Movie Name")
	}
	if m.Year != 0 {
		t.Errorf("Year = %d, want 0", m.Year)
	}
	if m.Extension != ".mkv" {
		t.Errorf("Extension = %q, want .mkv", m.Extension)
	}
}

func TestExtract_Languages(t *testing.T) {
	m := Extract("Film.2020.MULTI.TrueFrench.1080p.mkv", KindVideo)

	want := []string{"multi", "fr"}
	if len(m.Languages) != len(want) {
		t.Fatalf("Languages = %v, want %v", m.Languages, want)
	}
	for i := range want {
		if m.Languages[i] != want[i] {
			t.Errorf("Languages = %v, want %v", m.Languages, want)
			break
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"The Matrix (1999)", 1999},
		{"Movie 2024 release", 2024},
		{"(1850)", 0},
		{"no year here", 0},
		{"12345", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractYear(tt.input); got != tt.want {
				t.Errorf("ExtractYear(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindFromString(t *testing.T) {
	for _, kind := range []Kind{KindVideo, KindMusic, KindBook, KindGame} {
		got, ok := KindFromString(kind.String())
		if !ok || got != kind {
			t.Errorf("KindFromString(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := KindFromString("podcast"); ok {
		t.Error("expected podcast to be rejected")
	}
}

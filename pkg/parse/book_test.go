package parse

import "testing"

func TestExtractBook(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		author       string
		title        string
		series       string
		seriesNumber int
		year         int
	}{
		{
			name:         "series form",
			input:        "Brandon Sanderson - [Stormlight 3] - Oathbringer.epub",
			author:       "Brandon Sanderson",
			title:        "Oathbringer",
			series:       "Stormlight",
			seriesNumber: 3,
		},
		{
			name:   "year form",
			input:  "Andy Weir - Project Hail Mary (2021).epub",
			author: "Andy Weir",
			title:  "Project Hail Mary",
			year:   2021,
		},
		{
			name:   "author first",
			input:  "John Smith - Some Title.epub",
			author: "John Smith",
			title:  "Some Title",
		},
		{
			name:   "title first when left half is no name",
			input:  "the hobbit - J.R.R. Tolkien.epub",
			author: "J.R.R. Tolkien",
			title:  "the hobbit",
		},
		{
			name:  "bare title",
			input: "Dracula.epub",
			title: "Dracula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.input, KindBook)
			if m.Author != tt.author {
				t.Errorf("Author = %q, want %q", m.Author, tt.author)
			}
			if m.Title != tt.title {
				t.Errorf("Title = %q, want %q", m.Title, tt.title)
			}
			if m.Series != tt.series {
				t.Errorf("Series = %q, want %q", m.Series, tt.series)
			}
			if m.SeriesNumber != tt.seriesNumber {
				t.Errorf("SeriesNumber = %d, want %d", m.SeriesNumber, tt.seriesNumber)
			}
			if m.Year != tt.year {
				t.Errorf("Year = %d, want %d", m.Year, tt.year)
			}
		})
	}
}

func TestLooksLikeAuthor(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"John Smith", true},
		{"Ursula K. Le Guin", true},
		{"the hobbit", false},
		{"Dracula", false},
		{"A Very Long Title With Many Words", false},
	}

	for _, tt := range tests {
		if got := looksLikeAuthor(tt.input); got != tt.want {
			t.Errorf("looksLikeAuthor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

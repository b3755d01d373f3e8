package media

// Record is the canonical per-kind entity built from an adapted catalog
// payload. The common core is shared by every content type; the
// kind-specific fields are only meaningful for their own variants. A
// Record lives for one organize operation and is never retained.
type Record struct {
	ContentType ContentType

	Title         string
	OriginalTitle string
	ReleaseYear   int
	Language      string
	ExternalIDs   map[string]string // provider name -> id

	// Video
	SeriesName    string
	SeasonNumber  int
	EpisodeNumber int
	EpisodeTitle  string

	// Music
	Artist      string
	Album       string
	TrackNumber int

	// Book
	Author          string
	Narrator        string
	DurationSeconds int
	FileFormat      string // ebook container: epub, pdf, ...
	DRMProtected    bool
	Series          string
	IssueNumber     int

	// Game
	Platform string
	BaseGame string
}

// FolderStructure returns the directory hierarchy this record should live
// under, outermost first. Components are already sanitized.
func (r *Record) FolderStructure() []string {
	switch r.ContentType {
	case ContentTVSeries, ContentEpisode:
		name := r.SeriesName
		if name == "" {
			name = r.Title
		}
		folders := []string{sanitized(name)}
		if r.SeasonNumber > 0 {
			folders = append(folders, seasonFolder(r.SeasonNumber))
		}
		return folders
	case ContentAlbum, ContentTrack:
		var folders []string
		if r.Artist != "" {
			folders = append(folders, sanitized(r.Artist))
		}
		album := r.Album
		if album == "" {
			album = r.Title
		}
		if r.ReleaseYear > 0 {
			folders = append(folders, sanitized(album)+" ("+itoa(r.ReleaseYear)+")")
		} else {
			folders = append(folders, sanitized(album))
		}
		return folders
	case ContentBook, ContentEbook, ContentAudiobook, ContentComic:
		var folders []string
		if r.Author != "" {
			folders = append(folders, sanitized(r.Author))
		}
		if r.Series != "" {
			folders = append(folders, sanitized(r.Series))
		}
		if len(folders) == 0 {
			folders = append(folders, sanitized(r.Title))
		}
		return folders
	case ContentGame, ContentDLC:
		platform := r.Platform
		if platform == "" {
			platform = "Unknown Platform"
		}
		return []string{sanitized(platform)}
	default:
		return []string{BuildName(r)}
	}
}

package media

import (
	"fmt"

	"github.com/vmunix/mediasort/internal/organize"
	"github.com/vmunix/mediasort/pkg/parse"
)

var bookExtensions = []string{
	".epub", ".mobi", ".azw", ".azw3", ".pdf", ".djvu", ".fb2",
	".cbz", ".cbr", ".lit", ".pdb", ".txt", ".rtf", ".doc", ".docx",
}

// BookOps handles books, ebooks, audiobooks, and comics.
type BookOps struct{}

// NewBookOps creates book operations.
func NewBookOps() *BookOps { return &BookOps{} }

func (o *BookOps) Kind() Kind { return KindBook }

func (o *BookOps) SupportedExtensions() []string { return bookExtensions }

func (o *BookOps) FindFiles(root string) ([]string, error) {
	return findByExtension(root, bookExtensions, false)
}

// GenerateNewFilename renames a book to "Author - Title", with the
// "[Series NN]" and "(year)" variants when the filename carries them.
// Author and title come from the filename first, then the record. Without
// both, the sanitized original passes through.
func (o *BookOps) GenerateNewFilename(rec *Record, original string) string {
	info := parse.Extract(original, parse.KindBook)

	author := info.Author
	title := info.Title
	if rec != nil {
		if author == "" {
			author = rec.Author
		}
		if title == "" {
			title = rec.Title
		}
	}
	if author == "" || title == "" {
		return organize.CleanFilename(original)
	}

	author = organize.Sanitize(author)
	title = organize.Sanitize(title)

	switch {
	case info.Series != "" && info.SeriesNumber > 0:
		series := organize.Sanitize(info.Series)
		return fmt.Sprintf("%s - [%s %02d] - %s%s", author, series, info.SeriesNumber, title, info.Extension)
	case info.Year > 0:
		return fmt.Sprintf("%s - %s (%d)%s", author, title, info.Year, info.Extension)
	default:
		return fmt.Sprintf("%s - %s%s", author, title, info.Extension)
	}
}

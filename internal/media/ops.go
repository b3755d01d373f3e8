package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Operations is the capability surface every media kind implements. It
// replaces reflective "which method does this type have" probing: a
// caller holds the interface and knows exactly what it can ask for.
type Operations interface {
	Kind() Kind
	SupportedExtensions() []string
	// FindFiles recursively enumerates files under root matching the
	// kind's extension set.
	FindFiles(root string) ([]string, error)
	// GenerateNewFilename builds the canonical filename for original,
	// using rec to enrich the extracted tokens. A nil rec degrades to
	// extraction-only renaming, and unparseable names pass through
	// sanitized.
	GenerateNewFilename(rec *Record, original string) string
}

// findByExtension walks root and collects files whose extension is in
// exts. Sample files are skipped when skipSamples is set.
func findByExtension(root string, exts []string, skipSamples bool) ([]string, error) {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(e)] = true
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if skipSamples && strings.Contains(strings.ToLower(info.Name()), "sample") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return files, nil
}

// OperationsFor returns the operations type for a media kind, built with
// default naming templates.
func OperationsFor(kind Kind) Operations {
	switch kind {
	case KindMusic:
		return NewMusicOps("")
	case KindBook:
		return NewBookOps()
	case KindGame:
		return NewGameOps()
	default:
		return NewVideoOps("", "")
	}
}

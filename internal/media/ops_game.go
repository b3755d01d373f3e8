package media

import (
	"fmt"
	"strings"

	"github.com/vmunix/mediasort/internal/organize"
	"github.com/vmunix/mediasort/pkg/parse"
)

var gameExtensions = []string{
	".iso", ".bin", ".cue", ".img", ".nrg", ".nes", ".sfc", ".smc",
	".n64", ".z64", ".v64", ".nds", ".3ds", ".cia", ".gba", ".gbc",
	".gb", ".wbfs", ".wad", ".rvz", ".gen", ".smd", ".gg", ".sms",
	".cdi", ".chd", ".gcm", ".gcz", ".xiso", ".rom", ".zip", ".7z",
}

// GameOps handles games and DLC.
type GameOps struct{}

// NewGameOps creates game operations.
func NewGameOps() *GameOps { return &GameOps{} }

func (o *GameOps) Kind() Kind { return KindGame }

func (o *GameOps) SupportedExtensions() []string { return gameExtensions }

func (o *GameOps) FindFiles(root string) ([]string, error) {
	return findByExtension(root, gameExtensions, false)
}

// GenerateNewFilename rebuilds a ROM name in the conventional
// "Title (Region) (Rev N) (Tags) [CODE]" order from whatever the
// original name carried. An unparseable title passes through sanitized.
func (o *GameOps) GenerateNewFilename(rec *Record, original string) string {
	info := parse.Extract(original, parse.KindGame)

	title := info.Title
	if title == "" && rec != nil {
		title = rec.Title
	}
	if title == "" {
		return organize.CleanFilename(original)
	}

	parts := []string{organize.Sanitize(title)}

	switch {
	case info.Region != "" && len(info.Regions) < 2:
		parts = append(parts, "("+info.Region+")")
	case len(info.Regions) > 0:
		parts = append(parts, "("+strings.Join(info.Regions, ", ")+")")
	}
	if info.Revision > 0 {
		parts = append(parts, fmt.Sprintf("(Rev %d)", info.Revision))
	}
	if info.Version != "" {
		parts = append(parts, "(v"+info.Version+")")
	}
	if len(info.Tags) > 0 {
		parts = append(parts, "("+strings.Join(info.Tags, ", ")+")")
	}
	if info.ReleaseCode != "" {
		parts = append(parts, "["+info.ReleaseCode+"]")
	}

	return strings.Join(parts, " ") + info.Extension
}

// PlatformFor resolves a game file's platform: the bracketed filename
// prefix first, then the extension, then any path component naming a
// known platform.
func PlatformFor(info *parse.Metadata, path string) string {
	if info.Platform != "" {
		return info.Platform
	}
	if p := parse.PlatformFromExtension(info.Extension); p != "" {
		return p
	}
	for _, part := range strings.Split(strings.ToLower(path), "/") {
		for code, name := range parse.Platforms {
			if part == code {
				return name
			}
		}
	}
	return ""
}

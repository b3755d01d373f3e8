package parse

import (
	"regexp"
	"strings"
)

// Platforms maps short platform codes, as found in bracketed filename
// prefixes or folder names, to display names.
var Platforms = map[string]string{
	"nes":       "Nintendo Entertainment System",
	"snes":      "Super Nintendo",
	"n64":       "Nintendo 64",
	"gc":        "GameCube",
	"wii":       "Wii",
	"wiiu":      "Wii U",
	"switch":    "Nintendo Switch",
	"gb":        "Game Boy",
	"gbc":       "Game Boy Color",
	"gba":       "Game Boy Advance",
	"nds":       "Nintendo DS",
	"3ds":       "Nintendo 3DS",
	"genesis":   "Sega Genesis",
	"megadrive": "Sega Mega Drive",
	"saturn":    "Sega Saturn",
	"dreamcast": "Sega Dreamcast",
	"ps1":       "PlayStation",
	"psx":       "PlayStation",
	"ps2":       "PlayStation 2",
	"ps3":       "PlayStation 3",
	"ps4":       "PlayStation 4",
	"ps5":       "PlayStation 5",
	"psp":       "PlayStation Portable",
	"vita":      "PlayStation Vita",
	"xbox":      "Xbox",
	"xbox360":   "Xbox 360",
	"xboxone":   "Xbox One",
	"arcade":    "Arcade",
	"mame":      "MAME",
	"pc":        "PC",
	"dos":       "DOS",
}

// RegionTable maps region codes found in parenthesized groups to full
// names. Longer codes precede the shorter codes they contain.
var RegionTable = Table{
	{"usa", "USA"},
	{"us", "USA"},
	{"europe", "Europe"},
	{"eu", "Europe"},
	{"japan", "Japan"},
	{"jap", "Japan"},
	{"jp", "Japan"},
	{"world", "World"},
	{"france", "France"},
	{"fr", "France"},
	{"de", "Germany"},
	{"es", "Spain"},
	{"it", "Italy"},
	{"uk", "United Kingdom"},
	{"kr", "Korea"},
	{"cn", "China"},
	{"br", "Brazil"},
}

// extensionPlatforms infers a platform from ROM file extensions that are
// platform-specific.
var extensionPlatforms = map[string]string{
	".nes": "Nintendo Entertainment System",
	".sfc": "Super Nintendo",
	".smc": "Super Nintendo",
	".n64": "Nintendo 64",
	".z64": "Nintendo 64",
	".v64": "Nintendo 64",
	".nds": "Nintendo DS",
	".3ds": "Nintendo 3DS",
	".gba": "Game Boy Advance",
	".gbc": "Game Boy Color",
	".gb":  "Game Boy",
	".gen": "Sega Genesis",
	".smd": "Sega Genesis",
	".gg":  "Game Gear",
	".psp": "PlayStation Portable",
}

var (
	platformPrefixRe = regexp.MustCompile(`^\[([^\]]+)\]\s*(.+)$`)
	parenGroupRe     = regexp.MustCompile(`\(([^)]+)\)`)
	bracketGroupRe   = regexp.MustCompile(`\[([^\]]+)\]`)
	revisionRe       = regexp.MustCompile(`rev(?:ision)?\s*(\d+)`)
	versionRe        = regexp.MustCompile(`v(?:er(?:sion)?)?\s*([\d.]+)`)
	releaseCodeRe    = regexp.MustCompile(`^[A-Z]{4}[_-]?\d{5}$`)
)

var gameLanguageCodes = []string{"en", "fr", "de", "es", "it", "pt", "ja", "zh", "ko"}

func extractGame(m *Metadata, filename string) {
	stem := strings.TrimSuffix(filename, m.Extension)

	if g := platformPrefixRe.FindStringSubmatch(stem); g != nil {
		if name, ok := Platforms[strings.ToLower(strings.TrimSpace(g[1]))]; ok {
			m.Platform = name
		}
		stem = g[2]
	}

	for _, group := range parenGroupRe.FindAllStringSubmatch(stem, -1) {
		part := strings.ToLower(group[1])
		applyGameGroup(m, part)
	}

	for _, group := range bracketGroupRe.FindAllStringSubmatch(stem, -1) {
		part := group[1]
		if releaseCodeRe.MatchString(part) || strings.HasPrefix(part, "!") {
			m.ReleaseCode = part
		}
	}

	title := parenGroupRe.ReplaceAllString(stem, "")
	title = bracketGroupRe.ReplaceAllString(title, "")
	m.Title = TidyTitle(title)
}

// applyGameGroup interprets one parenthesized tag: region, revision,
// version, language list, or a release flag like Beta.
func applyGameGroup(m *Metadata, part string) {
	if name, _, ok := RegionTable.Match(part); ok {
		m.Regions = appendUnique(m.Regions, name)
		if m.Region == "" {
			m.Region = name
		}
	}

	if g := revisionRe.FindStringSubmatch(part); g != nil {
		m.Revision = atoi(g[1])
	} else if g := versionRe.FindStringSubmatch(part); g != nil {
		m.Version = g[1]
	}

	for _, lang := range gameLanguageCodes {
		if strings.Contains(part, lang) {
			m.Languages = appendUnique(m.Languages, lang)
		}
	}

	switch {
	case strings.Contains(part, "proto"):
		m.Tags = appendUnique(m.Tags, "Prototype")
	case strings.Contains(part, "beta"):
		m.Tags = appendUnique(m.Tags, "Beta")
	case strings.Contains(part, "demo"):
		m.Tags = appendUnique(m.Tags, "Demo")
	case strings.Contains(part, "hack"):
		m.Tags = appendUnique(m.Tags, "Hack")
	case strings.Contains(part, "sample"):
		m.Tags = appendUnique(m.Tags, "Sample")
	case strings.Contains(part, "promo"):
		m.Tags = appendUnique(m.Tags, "Promo")
	}
}

// PlatformFromExtension infers a platform from a ROM file extension.
// Returns "" for generic extensions like .iso or .zip.
func PlatformFromExtension(ext string) string {
	return extensionPlatforms[strings.ToLower(ext)]
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

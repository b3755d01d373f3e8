package media

import (
	"fmt"
	"regexp"
	"strconv"
)

// Default naming templates, overridable from configuration.
const (
	DefaultMovieTemplate   = "{title} ({year})"
	DefaultEpisodeTemplate = "{title} - S{season:02}E{episode:02}"
	DefaultTrackTemplate   = "{track:02} - {title}"
)

// placeholderRe matches {name} or {name:02} style placeholders.
var placeholderRe = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// ApplyTemplate substitutes vars into a template string. {name} is plain
// substitution; {name:02} zero-pads integer values. Unknown placeholders
// are left in place so a bad template is visible in the output.
func ApplyTemplate(template string, vars map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		parts := placeholderRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		val, ok := vars[parts[1]]
		if !ok {
			return match
		}

		if len(parts) >= 3 && parts[2] != "" {
			if width, err := strconv.Atoi(parts[2]); err == nil {
				switch v := val.(type) {
				case int:
					return fmt.Sprintf("%0*d", width, v)
				case int64:
					return fmt.Sprintf("%0*d", width, v)
				}
			}
		}

		return fmt.Sprintf("%v", val)
	})
}

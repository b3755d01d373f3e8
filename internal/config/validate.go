package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// At least one library required
	if !c.Libraries.Video.Configured() && !c.Libraries.Music.Configured() &&
		!c.Libraries.Book.Configured() && !c.Libraries.Game.Configured() {
		errs = append(errs, "libraries: at least one library (video, music, book, or game) must be configured")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Matching.MinScore < 0 || c.Matching.MinScore > 1 {
		errs = append(errs, fmt.Sprintf("matching.min_score: must be between 0 and 1, got %g", c.Matching.MinScore))
	}

	for name, lib := range map[string]LibraryConfig{
		"video": c.Libraries.Video,
		"music": c.Libraries.Music,
		"book":  c.Libraries.Book,
		"game":  c.Libraries.Game,
	} {
		if lib.Configured() && lib.Dest == "" {
			errs = append(errs, fmt.Sprintf("libraries.%s.dest: required when roots are set", name))
		}
		// Root path warnings (non-fatal)
		for _, root := range lib.Roots {
			if _, err := os.Stat(root); os.IsNotExist(err) {
				errs = append(errs, fmt.Sprintf("libraries.%s.roots: warning: directory %q does not exist", name, root))
			}
		}
	}

	return errs
}

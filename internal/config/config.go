// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `toml:"log"`
	History   HistoryConfig   `toml:"history"`
	Libraries LibrariesConfig `toml:"libraries"`
	Naming    NamingConfig    `toml:"naming"`
	Organize  OrganizeConfig  `toml:"organize"`
	Matching  MatchingConfig  `toml:"matching"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LibrariesConfig holds one library per media kind.
type LibrariesConfig struct {
	Video LibraryConfig `toml:"video"`
	Music LibraryConfig `toml:"music"`
	Book  LibraryConfig `toml:"book"`
	Game  LibraryConfig `toml:"game"`
}

// LibraryConfig describes where a kind's files come from and go to.
type LibraryConfig struct {
	Roots []string `toml:"roots"`
	Dest  string   `toml:"dest"`
}

// Configured reports whether the library has any source root.
func (l LibraryConfig) Configured() bool { return len(l.Roots) > 0 }

// NamingConfig overrides the built-in naming templates. Placeholders use
// the "{title}", "{season:02}" form; empty entries keep the defaults.
type NamingConfig struct {
	Movie   string `toml:"movie"`
	Episode string `toml:"episode"`
	Track   string `toml:"track"`
}

type OrganizeConfig struct {
	CreateFolders      bool `toml:"create_folders"`
	SkipDuplicates     bool `toml:"skip_duplicates"`
	BackupBeforeRename bool `toml:"backup_before_rename"`
	Copy               bool `toml:"copy"`
}

type MatchingConfig struct {
	MinScore float64 `toml:"min_score"`
}

// Load reads and parses the configuration file. Unresolved ${VAR}
// references are an error so a half-substituted path never reaches the
// filesystem layer.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "./data/mediasort.db"
	}
	if cfg.Matching.MinScore == 0 {
		cfg.Matching.MinScore = 0.70
	}

	return &cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} and ${VAR:-default} references with
// environment values. An empty value triggers the default like an unset
// variable. Returns the substituted content and the names of variables
// that had neither a value nor a default.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1] // Strip ${ and }
		name, def, hasDefault := strings.Cut(expr, ":-")
		if value, ok := os.LookupEnv(name); ok && value != "" {
			return value
		}
		if hasDefault {
			return def
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match // Leave unchanged so the reference is visible
	})
	sort.Strings(missing)
	return out, missing
}

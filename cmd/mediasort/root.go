package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/mediasort/internal/config"
	"github.com/vmunix/mediasort/internal/media"
	"github.com/vmunix/mediasort/pkg/parse"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	kindName   string
)

var rootCmd = &cobra.Command{
	Use:   "mediasort",
	Short: "Organize and rename media files",
	Long: `mediasort - organize and rename media files

Parses messy download filenames, renames files to canonical names,
and sorts them into a clean library hierarchy. Handles video, music,
books, and game ROMs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mediasort {{.Version}}\n")
}

// loadConfig resolves the config file (flag first, then the search
// order) and loads it.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// resolveKind parses the --kind flag.
func resolveKind() (parse.Kind, error) {
	kind, ok := parse.KindFromString(kindName)
	if !ok {
		return 0, fmt.Errorf("unknown kind %q (expected video, music, book, or game)", kindName)
	}
	return kind, nil
}

// opsFor builds the per-kind operations with the configured templates.
// A nil config keeps the built-in defaults.
func opsFor(kind parse.Kind, cfg *config.Config) media.Operations {
	if cfg == nil {
		return media.OperationsFor(kind)
	}
	switch kind {
	case parse.KindMusic:
		return media.NewMusicOps(cfg.Naming.Track)
	case parse.KindVideo:
		return media.NewVideoOps(cfg.Naming.Movie, cfg.Naming.Episode)
	default:
		return media.OperationsFor(kind)
	}
}

// libraryFor returns the configured library for a kind.
func libraryFor(kind parse.Kind, cfg *config.Config) config.LibraryConfig {
	switch kind {
	case parse.KindMusic:
		return cfg.Libraries.Music
	case parse.KindBook:
		return cfg.Libraries.Book
	case parse.KindGame:
		return cfg.Libraries.Game
	default:
		return cfg.Libraries.Video
	}
}

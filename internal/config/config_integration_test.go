package config

import (
	"path/filepath"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "mediasort", "config.toml")
	if err := WriteDefault(cfgPath); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	// 2. Load it back
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 3. Verify the shipped defaults survive a round trip
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled in default config")
	}
	if !cfg.Libraries.Video.Configured() {
		t.Error("expected video library configured in default config")
	}
	if !cfg.Organize.CreateFolders {
		t.Error("expected create_folders enabled in default config")
	}
	if cfg.Matching.MinScore != 0.70 {
		t.Errorf("expected min_score 0.70, got %g", cfg.Matching.MinScore)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	if cfg.Rating.KFactor != 32 {
		t.Errorf("expected default K 32, got %v", cfg.Rating.KFactor)
	}
	if cfg.UI.HistoryLimit != 200 {
		t.Errorf("expected default history limit 200, got %d", cfg.UI.HistoryLimit)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.Rating.KFactor != 32 {
		t.Errorf("corrupt config should fall back to defaults, got K %v", cfg.Rating.KFactor)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Rating.KFactor = 24
	cfg.UI.HistoryLimit = 50
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := Load(dir)
	if got.Rating.KFactor != 24 || got.UI.HistoryLimit != 50 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	raw := `{"rating":{"k_factor":-5},"ui":{"history_limit":0}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.Rating.KFactor != 32 || cfg.UI.HistoryLimit != 200 {
		t.Errorf("invalid values should clamp to defaults, got %+v", cfg)
	}
}

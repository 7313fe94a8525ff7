package store

import (
	"path/filepath"
	"testing"

	"rolo/internal/book"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("ROLO_CONFIG_DIR", t.TempDir())

	// Absent config loads as zero values.
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Mode != "" || cfg.BookDir != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}

	cfg.Mode = "people"
	cfg.Format = "table"
	cfg.Window = book.WindowGeometry{Width: 120, Height: 40, X: 5, Y: 6}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig error: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if got.Mode != "people" || got.Format != "table" {
		t.Fatalf("config lost fields: %+v", got)
	}
	// Geometry is pass-through, byte for byte.
	if got.Window != cfg.Window {
		t.Fatalf("window geometry mismatch: %+v", got.Window)
	}
}

func TestConfigPrefsConversion(t *testing.T) {
	cfg := GlobalConfig{Window: book.WindowGeometry{Width: 80, Height: 24}}
	prefs := cfg.Prefs("/tmp/book")
	if prefs.FilePath != filepath.Join("/tmp/book", "db.json") {
		t.Fatalf("prefs file path: %q", prefs.FilePath)
	}
	if prefs.Window.Width != 80 {
		t.Fatalf("prefs window: %+v", prefs.Window)
	}
}

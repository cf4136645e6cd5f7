package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("currency = %q", cfg.General.Currency)
	}
	if cfg.General.DefaultTripType != "city" {
		t.Errorf("default trip type = %q", cfg.General.DefaultTripType)
	}
	if cfg.Appearance.Theme != "dark" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists should be false before first save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DefaultTripType = "beach"
	cfg.Appearance.Theme = "light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists should be true after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "$" || got.General.DefaultTripType != "beach" || got.Appearance.Theme != "light" {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestDataPathHonorsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/elsewhere"
	if got := DataPath(cfg); got != filepath.Join("/tmp/elsewhere", "trips.db") {
		t.Errorf("DataPath = %q", got)
	}

	cfg.General.DataDir = ""
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataPath(cfg); got != filepath.Join("/tmp/xdg", "tripdeck", "trips.db") {
		t.Errorf("DataPath with XDG = %q", got)
	}
}

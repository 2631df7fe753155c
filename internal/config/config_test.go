package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want %q", cfg.General.Currency, "$")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, "flexoki-dark")
	}
	if cfg.General.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (resolved at runtime)", cfg.General.DBPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Error("Exists() = true with no config file on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		General: GeneralConfig{
			DBPath:   "/tmp/custom/outlay.db",
			Currency: "€",
		},
		Appearance: AppearanceConfig{
			Theme: "catppuccin-mocha",
		},
	}

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	if got := ConfigPath(); got != filepath.Join("/xdg/config", "outlay", "config.toml") {
		t.Errorf("ConfigPath = %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/xdg/data", "outlay", "outlay.db") {
		t.Errorf("DefaultDBPath = %q", got)
	}
}

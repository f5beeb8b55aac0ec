// ABOUTME: Tests for configuration defaults and path expansion.
// ABOUTME: Validates backend selection and config file round-trip.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.GetBackend() != "charm" {
		t.Errorf("GetBackend = %q, want charm", cfg.GetBackend())
	}

	cfg.Backend = "badger"
	if cfg.GetBackend() != "badger" {
		t.Errorf("GetBackend = %q, want badger", cfg.GetBackend())
	}
}

func TestOpenStorageRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected unknown backend error")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/coach-data", filepath.Join(home, "coach-data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "badger", DataDir: "~/coach-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Backend != "badger" || loaded.DataDir != "~/coach-data" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

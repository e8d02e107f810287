package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./vtx.db" {
			t.Errorf("expected database path ./vtx.db, got %s", config.Database.Path)
		}

		if config.Backend.BaseURL != "http://127.0.0.1:5000" {
			t.Errorf("expected backend base URL http://127.0.0.1:5000, got %s", config.Backend.BaseURL)
		}

		if config.Player.OverrideHold != 3000 {
			t.Errorf("expected override hold 3000, got %d", config.Player.OverrideHold)
		}

		if config.Player.ReconnectDelay != 3000 {
			t.Errorf("expected reconnect delay 3000, got %d", config.Player.ReconnectDelay)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("expected error when config file already exists")
		}
	})

	t.Run("EnvOverlay", func(t *testing.T) {
		t.Setenv("VTX_BACKEND_URL", "http://example.test:9000")
		t.Setenv("VTX_MEDIA_DIR", "/srv/music")

		config := DefaultConfig()
		if config.Backend.BaseURL != "http://example.test:9000" {
			t.Errorf("expected env override for backend URL, got %s", config.Backend.BaseURL)
		}
		if config.Player.MediaDir != "/srv/music" {
			t.Errorf("expected env override for media dir, got %s", config.Player.MediaDir)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Player   PlayerConfig   `toml:"player"`
	Database DatabaseConfig `toml:"database"`
}

// BackendConfig contains addresses for the subtitle-processing backend.
type BackendConfig struct {
	BaseURL string `toml:"base_url"` // HTTP endpoint for task requests
	PushURL string `toml:"push_url"` // WebSocket endpoint for progress messages
}

// PlayerConfig contains playback and lyric-view settings.
type PlayerConfig struct {
	MediaDir       string `toml:"media_dir"`        // Directory scanned for songs
	FrameInterval  int    `toml:"frame_interval"`   // Sync tick interval in milliseconds
	OverrideHold   int    `toml:"override_hold"`    // Manual-scroll hold in milliseconds
	ReconnectDelay int    `toml:"reconnect_delay"`  // Push-channel redial delay in milliseconds
	RequestsPerSec int    `toml:"requests_per_sec"` // Task request rate limit
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// A .env file (or the process environment) may override the backend addresses
// and media directory via VTX_BACKEND_URL, VTX_PUSH_URL and VTX_MEDIA_DIR.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidArgument)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("VTX_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("VTX_PUSH_URL"); v != "" {
		c.Backend.PushURL = v
	}
	if v := os.Getenv("VTX_MEDIA_DIR"); v != "" {
		c.Player.MediaDir = v
	}
}

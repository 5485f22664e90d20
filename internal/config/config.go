// ABOUTME: Healthbridge configuration management with backend selection.
// ABOUTME: Handles settings and the native store factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openhealth/healthbridge/internal/native"
	"github.com/openhealth/healthbridge/internal/native/devstore"
	"github.com/openhealth/healthbridge/internal/native/unavailable"
)

// Config stores healthbridge configuration.
type Config struct {
	// Backend selects the native store adapter: "dev" (default, local
	// Badger-backed store) or "none" (fallback reporting unavailable).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for the dev store's database.
	// Supports ~ expansion. Defaults to ~/.local/share/healthbridge.
	DataDir string `json:"data_dir,omitempty"`

	// Platform overrides the platform label reported by isAvailable.
	Platform string `json:"platform,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "dev".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "dev"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DataDir returns the default XDG data directory.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "healthbridge")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a native Store implementation based on the
// configured backend.
func (c *Config) OpenStore() (native.Store, error) {
	switch backend := c.GetBackend(); backend {
	case "dev":
		dir := filepath.Join(c.GetDataDir(), "store")
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		return devstore.Open(dir, c.Platform)
	case "none":
		platform := c.Platform
		if platform == "" {
			platform = "web"
		}
		return unavailable.New(platform, ""), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthbridge", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

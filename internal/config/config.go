// Package config loads the persistent application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// Rating holds Elo update settings
	Rating RatingConfig `json:"rating"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// RatingConfig holds Elo update settings
type RatingConfig struct {
	KFactor float64 `json:"k_factor"` // Rating change sensitivity per comparison
}

// UIConfig holds UI preferences
type UIConfig struct {
	HistoryLimit int `json:"history_limit"` // Most recent entries shown in the history view
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Rating: RatingConfig{
			KFactor: 32,
		},
		UI: UIConfig{
			HistoryLimit: 200,
		},
	}
}

// Path returns the path to the config file under dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads config from disk, or returns defaults. A missing or corrupt
// file is not an error: the defaults apply.
func Load(dataDir string) *Config {
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.Rating.KFactor <= 0 {
		cfg.Rating.KFactor = 32
	}
	if cfg.UI.HistoryLimit <= 0 {
		cfg.UI.HistoryLimit = 200
	}
	return cfg
}

// Save writes config to disk
func (c *Config) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(Path(dataDir), data, 0644)
}

// Package config persists the driver's defaults between runs.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the command line driver's defaults. Flags override
// whatever is stored here.
type Config struct {
	PhraseLength    float64 `json:"phrase_length"`
	Workers         int     `json:"workers"`
	StrictMonophony bool    `json:"strict_monophony"`
	TrackIndex      int     `json:"track_index"`
}

func defaults() *Config {
	return &Config{
		PhraseLength: 16,
		Workers:      1,
		TrackIndex:   0,
	}
}

// Path returns the full path to the config file.
func Path() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "fractal-midi", "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

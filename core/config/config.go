// Package config persists the small set of user preferences the editor
// keeps between runs: engine location, call timeout, and recent files.
// Preferences live in a JSON file under the user config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// maxRecent caps the recent-files list.
const maxRecent = 5

const defaultTimeoutSeconds = 30

// Config holds the persisted preferences.
type Config struct {
	ExifToolPath   string   `mapstructure:"exiftool_path"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
	RecentFiles    []string `mapstructure:"recent_files"`
	LastDirectory  string   `mapstructure:"last_directory"`

	path string
}

// DefaultPath returns the preferences file location, creating the
// directory if needed.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	dir := filepath.Join(base, "tagwriter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads preferences from path, applying defaults for anything
// unset. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("recent_files", []string{})

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	cfg.path = path
	return &cfg, nil
}

// Save writes the preferences back to the file they were loaded from.
func (c *Config) Save() error {
	v := viper.New()
	v.SetConfigFile(c.path)
	v.SetConfigType("json")
	v.Set("exiftool_path", c.ExifToolPath)
	v.Set("timeout_seconds", c.TimeoutSeconds)
	v.Set("recent_files", c.RecentFiles)
	v.Set("last_directory", c.LastDirectory)
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// AddRecentFile moves path to the front of the recent list, dropping
// duplicates and anything beyond the cap. The file's directory becomes
// the last-used directory.
func (c *Config) AddRecentFile(path string) {
	recent := []string{path}
	for _, p := range c.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	c.RecentFiles = recent
	c.LastDirectory = filepath.Dir(path)
}

// Package config loads the application configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the application configuration. Absent fields take defaults.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	Storage      string `yaml:"storage"` // file | postgres | memory
	PostgresURL  string `yaml:"postgres_url"`
	Env          string `yaml:"env"` // development | production
	ReminderTick string `yaml:"reminder_tick"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:      ".nutritrack",
		Storage:      StorageFile,
		Env:          "development",
		ReminderTick: "1m",
	}
}

// Load reads the configuration from the YAML file at path. A missing file
// is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	if cfg.Storage == "" {
		cfg.Storage = StorageFile
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ReminderTick == "" {
		cfg.ReminderTick = "1m"
	}
	return cfg, nil
}

// TickInterval parses the reminder tick duration.
func (c *Config) TickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.ReminderTick)
	if err != nil {
		return 0, fmt.Errorf("reminder_tick: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("reminder_tick must be positive, got %s", c.ReminderTick)
	}
	return d, nil
}

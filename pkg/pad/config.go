package pad

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "gridpad.toml"

// Config holds the pad configuration. The three control toggles are read
// on each refresh: the visibility flags gate which glyph pairs render and
// StepIncrement scales every movement command.
type Config struct {
	Database       string `toml:"database"`
	RefreshSeconds int    `toml:"refresh_seconds"`
	ShowHorizontal bool   `toml:"show_horizontal"`
	ShowVertical   bool   `toml:"show_vertical"`
	StepIncrement  int    `toml:"step_increment"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Database:       "gridpad.db",
		RefreshSeconds: 5,
		ShowHorizontal: true,
		ShowVertical:   true,
		StepIncrement:  1,
	}
}

// LoadConfig loads configuration from the default config file.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(DefaultConfigFile)
}

// LoadConfigFrom loads configuration from a specific file. Keys absent
// from the file keep their default values.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.RefreshSeconds < 1 {
		cfg.RefreshSeconds = 1
	}
	if cfg.StepIncrement < 1 {
		cfg.StepIncrement = 1
	}
	return cfg, nil
}

// Save writes configuration to the default config file.
func (c Config) Save() error {
	return c.SaveTo(DefaultConfigFile)
}

// SaveTo writes configuration to a specific file.
func (c Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ConfigExists returns true if the default config file exists.
func ConfigExists() bool {
	_, err := os.Stat(DefaultConfigFile)
	return err == nil
}

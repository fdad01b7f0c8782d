package spannify

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML shape of a config file. Pointer fields
// distinguish "absent" from "zero" so unset keys keep their defaults.
// Depthmap and Colormap are code-level hooks and cannot be loaded from a
// file.
type fileConfig struct {
	Tabwidth *int   `toml:"tabwidth"`
	Skip     *int   `toml:"skip"`
	Level    *Level `toml:"level"`
}

// ParseConfig decodes a TOML document into a Config. Recognized keys are
// tabwidth, skip and level (a level name, e.g. "debug"). Keys left unset
// keep the NewConfig defaults.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := NewConfig()
	if fc.Tabwidth != nil {
		if *fc.Tabwidth < 0 {
			return Config{}, fmt.Errorf("parse config: tabwidth must not be negative, got %d", *fc.Tabwidth)
		}
		cfg.Tabwidth = *fc.Tabwidth
	}
	if fc.Skip != nil {
		if *fc.Skip < 0 {
			return Config{}, fmt.Errorf("parse config: skip must not be negative, got %d", *fc.Skip)
		}
		cfg.Skip = *fc.Skip
	}
	if fc.Level != nil {
		cfg.Level = *fc.Level
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return ParseConfig(data)
}

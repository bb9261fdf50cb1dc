// Package config manages the TOML configuration for the explore CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Suggest SuggestConfig `toml:"suggest"`
	CLI     CliConfig     `toml:"cli"`
}

// SearchConfig has ranking related options.
type SearchConfig struct {
	// ResultLimit caps how many ranked results are displayed per query.
	ResultLimit int `toml:"result_limit"`
	// Cutoff is the autocut parameter passed to the search builder
	// (-1 disables autocut).
	Cutoff int `toml:"cutoff"`
}

// SuggestConfig has autocomplete related options.
type SuggestConfig struct {
	// ThrottleMs is the cooldown window for recomputing suggestions,
	// in milliseconds.
	ThrottleMs int `toml:"throttle_ms"`
}

// CliConfig holds interface options.
type CliConfig struct {
	// ShowExplain prints the score explanation next to each result.
	ShowExplain bool `toml:"show_explain"`
	// FacetField is the facet displayed and selectable in the loop.
	FacetField string `toml:"facet_field"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			ResultLimit: 10,
			Cutoff:      -1,
		},
		Suggest: SuggestConfig{
			ThrottleMs: 500,
		},
		CLI: CliConfig{
			ShowExplain: true,
			FacetField:  "age",
		},
	}
}

// Load reads the config file at path. A missing file is created with the
// defaults so users have a template to edit; any other error falls back to
// the defaults with a warning.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if writeErr := write(path, cfg); writeErr != nil {
			log.Warnf("Could not create config file %s: %v", path, writeErr)
		} else {
			log.Infof("Created default config file at %s", path)
		}
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Warnf("Could not parse config file %s, using defaults: %v", path, err)
		return Default()
	}
	return cfg
}

func write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

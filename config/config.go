// Package config loads optional file-based defaults for the engine
// binaries, grounded on ehrlich-b-rungine's internal/registry loader
// (toml.DecodeFile into a plain struct, missing file is not an error).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults an optional chessengine.toml may override;
// flags passed on the command line take precedence over these.
type Config struct {
	HashSizeMB        int    `toml:"hash_size_mb"`
	DefaultDifficulty string `toml:"default_difficulty"`
	DefaultStyle      string `toml:"default_style"`
	DefaultThinkMs    int    `toml:"default_think_ms"`
}

// Default returns the built-in settings used when no config file is
// present or none is requested.
func Default() Config {
	return Config{
		HashSizeMB:        64,
		DefaultDifficulty: "Medium",
		DefaultStyle:      "Balanced",
		DefaultThinkMs:    2000,
	}
}

// Load reads path and decodes it over Default(), so a config file only
// needs to mention the fields it wants to override. A missing file is
// not an error: it simply yields the defaults.
func Load(path string) (Config, error) {
	var cfg = Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

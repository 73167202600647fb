// Package config loads the small TOML document cmd/danmakudemo reads to
// parameterize a simulation run: seed, rank, difficulty, and how many frames
// to step.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the demo driver's configuration document.
type Config struct {
	Seed       uint16 `toml:"seed"`
	Rank       int32  `toml:"rank"`
	Difficulty int32  `toml:"difficulty"`
	Frames     int    `toml:"frames"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{Seed: 0, Rank: 0, Difficulty: 16, Frames: 600}
}

// Load reads and decodes a TOML document at path, starting from Default()
// so a partial document still yields sane values for whatever it omits.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads engine tuning from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/quartiles/internal/generator"
)

// Config is the full engine configuration.
type Config struct {
	DictionaryPath string `yaml:"dictionary_path"`
	PuzzleDir      string `yaml:"puzzle_dir"`
	Generator      struct {
		MaxAttempts    int `yaml:"max_attempts"`
		MinTotalPoints int `yaml:"min_total_points"`
		MinWordLength  int `yaml:"min_word_length"`
		MaxWordLength  int `yaml:"max_word_length"`
	} `yaml:"generator"`
}

// Default returns the production configuration.
func Default() Config {
	var c Config
	c.DictionaryPath = "data/dictionary.bin"
	c.PuzzleDir = "data/puzzles"
	g := generator.DefaultConfig()
	c.Generator.MaxAttempts = g.MaxAttempts
	c.Generator.MinTotalPoints = g.MinTotalPoints
	c.Generator.MinWordLength = g.MinWordLength
	c.Generator.MaxWordLength = g.MaxWordLength
	return c
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// GeneratorConfig converts the YAML view into the generator's tuning.
func (c Config) GeneratorConfig() generator.Config {
	return generator.Config{
		MaxAttempts:    c.Generator.MaxAttempts,
		MinTotalPoints: c.Generator.MinTotalPoints,
		MinWordLength:  c.Generator.MinWordLength,
		MaxWordLength:  c.Generator.MaxWordLength,
	}
}

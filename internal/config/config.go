// Package config holds the settings of the agglo binary. Values come from
// built-in defaults, then an optional YAML file, then command-line flags.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/TrevorS/agglo"
	"github.com/TrevorS/agglo/internal/dataset"
	"github.com/TrevorS/agglo/internal/logging"
)

// PromptIterations means the iteration count is asked for interactively.
const PromptIterations = -1

// Config is the full binary configuration.
type Config struct {
	// File is the tab-delimited data file.
	File string `yaml:"file"`

	// Iterations is the number of merges; PromptIterations asks on stdin.
	Iterations int `yaml:"iterations"`

	Standardize bool   `yaml:"standardize"`
	Strategy    string `yaml:"strategy"`
	Workers     int    `yaml:"workers"`

	KeepDuplicates bool `yaml:"keep_duplicates"`

	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Output controls the printed report.
type Output struct {
	ShowAttributes bool `yaml:"show_attributes"`
	Precision      int  `yaml:"precision"`
}

// Log controls diagnostic logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:       dataset.DefaultPath,
		Iterations: PromptIterations,
		Strategy:   string(agglo.StrategyAuto),
		Output:     Output{Precision: 3},
		Log:        Log{Level: "info", Format: logging.FormatText},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are rejected. An empty file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "open config %q", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// Validate checks the values that can be checked before data is loaded.
func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("file must be set")
	}
	if c.Iterations < PromptIterations {
		return errors.Errorf("iterations must be >= 0, got %d", c.Iterations)
	}
	if _, err := agglo.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Log.Format != logging.FormatText && c.Log.Format != logging.FormatJSON {
		return errors.Errorf("log format must be %q or %q, got %q",
			logging.FormatText, logging.FormatJSON, c.Log.Format)
	}
	return nil
}

// Engine converts c into a clustering configuration.
func (c Config) Engine() agglo.Config {
	cfg := agglo.DefaultConfig()
	cfg.Standardize = c.Standardize
	cfg.Strategy, _ = agglo.ParseStrategy(c.Strategy)
	cfg.Workers = c.Workers
	return cfg
}

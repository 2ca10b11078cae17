// Package config loads the optional YAML configuration of the iso20022 CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/compliance"
)

// Config holds CLI defaults. Command-line flags override file values.
type Config struct {
	Jobs       int    `yaml:"jobs"`
	Compliance string `yaml:"compliance"`
	FailFast   bool   `yaml:"failFast"`
	Hash       string `yaml:"hash"`
	LogLevel   string `yaml:"logLevel"`
	LogFormat  string `yaml:"logFormat"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Jobs:       4,
		Compliance: compliance.Permissive.String(),
		Hash:       string(cidutil.SHA2_256),
		LogLevel:   "INFO",
		LogFormat:  "CONSOLE",
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Check()
}

// Check rejects values the CLI cannot use.
func (c Config) Check() error {
	if c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be at least 1, got %d", c.Jobs)
	}
	if _, err := compliance.ParseMode(c.Compliance); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := cidutil.ParseAlgorithm(c.Hash); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

// DefaultTopN is the ranking cutoff used when none is configured.
const DefaultTopN = 10

// Config holds the recognized driver configuration.
type Config struct {
	SourcePath string `yaml:"source_path"`
	TopN       int    `yaml:"top_n"`
}

// Default returns a configuration with the standard ranking cutoff and
// no source path.
func Default() Config {
	return Config{TopN: DefaultTopN}
}

// Load reads configuration from a YAML file. Fields omitted from the
// file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("%w: source path is required", internalerr.ErrInvalidConfig)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("%w: top_n must be positive, got %d", internalerr.ErrInvalidConfig, c.TopN)
	}
	return nil
}

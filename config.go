package fla

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/fla/logging"
)

// Config is the file form of the load options.
//
//	entry_name: DOMDocument.xml
//	concurrency: 4
//	log:
//	  level: debug
//	  format: console
type Config struct {
	EntryName   string          `yaml:"entry_name,omitempty"`
	Concurrency int             `yaml:"concurrency,omitempty"`
	Log         *logging.Config `yaml:"log,omitempty"`
}

// Validate checks the values a Loader cannot apply.
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("fla: config: concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Log != nil {
		switch c.Log.Format {
		case "", "json", "console":
		default:
			return fmt.Errorf("fla: config: unknown log format %q", c.Log.Format)
		}
	}
	return nil
}

// ParseConfig decodes a YAML config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fla: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// WriteConfig writes cfg to a YAML file.
func WriteConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

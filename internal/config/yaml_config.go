package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Presentation settings that are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Buckets []BucketConfig `yaml:"buckets"`
}

// BucketConfig overrides how one category is presented.
type BucketConfig struct {
	Name        string      `yaml:"name"` // must match a known category label
	Description string      `yaml:"description,omitempty"`
	Style       StyleConfig `yaml:"style,omitempty"`
}

// StyleConfig holds CSS classes for a category accent. Empty fields keep the
// built-in value.
type StyleConfig struct {
	Border   string `yaml:"border,omitempty"`
	Chip     string `yaml:"chip,omitempty"`
	ChipText string `yaml:"chip_text,omitempty"`
	Hover    string `yaml:"hover,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetBucket finds the override for a category label.
func (c *YAMLConfig) GetBucket(name string) *BucketConfig {
	if c == nil {
		return nil
	}
	for i := range c.Buckets {
		if c.Buckets[i].Name == name {
			return &c.Buckets[i]
		}
	}
	return nil
}

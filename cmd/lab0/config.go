package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Config carries optional defaults loaded from a YAML file via --config.
// Command-line flags always win over file values.
type Config struct {
	// MissingThreshold overrides the 0.3 default used by quality checks.
	MissingThreshold *float64 `json:"missingThreshold,omitempty"`
	// FillValue is the default replacement for clean fill-missing.
	FillValue string `json:"fillValue,omitempty"`
	// Stopwords is the default stopword list for text remove-stopwords.
	Stopwords []string `json:"stopwords,omitempty"`
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// missingThreshold resolves the quality-check threshold from config or
// the canonical default.
func (c Config) missingThreshold() float64 {
	if c.MissingThreshold != nil {
		return *c.MissingThreshold
	}
	return 0.3
}

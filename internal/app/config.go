package app

import (
	"errors"
	"fmt"
)

// Output formats for listings and scenario reports.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // hcl file or directory

	ListTags bool
	Category string // restricts ListTags to one category, e.g. "Weapon"

	Output    string
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" && !cfg.ListTags {
		return nil, errors.New("a scenario path is required unless listing tags")
	}
	if cfg.Category != "" && !cfg.ListTags {
		return nil, errors.New("category can only be used when listing tags")
	}

	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}

	return &cfg, nil
}

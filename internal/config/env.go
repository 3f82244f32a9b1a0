package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment-level defaults.
type Env struct {
	LogLevel     string `env:"TIRCORE_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"TIRCORE_LOG_FORMAT" envDefault:"text"`
	Output       string `env:"TIRCORE_OUTPUT" envDefault:"text"`
	ScenarioPath string `env:"TIRCORE_SCENARIO"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// LoadEnvFrom reads Env from the given variables instead of the process
// environment.
func LoadEnvFrom(vars map[string]string) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

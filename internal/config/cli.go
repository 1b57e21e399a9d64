package config

import (
	"fmt"

	"github.com/rezkam/ramadan/internal/env"
)

// CLIConfig holds all configuration for the ramadan binary.
type CLIConfig struct {
	Calendar      CalendarConfig
	Observability ObservabilityConfig
}

// LoadCLIConfig loads and validates CLI configuration from environment.
func LoadCLIConfig() (*CLIConfig, error) {
	cfg := &CLIConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load cli config: %w", err)
	}

	return cfg, nil
}

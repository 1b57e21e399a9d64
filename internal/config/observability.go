package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"RAMADAN_OTEL_ENABLED" default:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"ramadan"`

	// ShutdownTimeout bounds the final telemetry flush when the command exits.
	ShutdownTimeout time.Duration `env:"RAMADAN_OTEL_SHUTDOWN_TIMEOUT" default:"5s"`
}

// Validate validates the observability configuration.
func (c *ObservabilityConfig) Validate() error {
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("RAMADAN_OTEL_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

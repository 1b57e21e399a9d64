package config

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrOverrideIncomplete is returned when only one of RAMADAN_START and RAMADAN_END is set.
var ErrOverrideIncomplete = errors.New("RAMADAN_START and RAMADAN_END must be set together")

// CalendarConfig holds calendar engine configuration.
type CalendarConfig struct {
	// Override window for every year, for testing and demos.
	// Both dates must be set for the override to apply.
	Start civil.Date `env:"RAMADAN_START"`
	End   civil.Date `env:"RAMADAN_END"`

	// WindowsFile replaces the built-in table of known windows (YAML).
	WindowsFile string `env:"RAMADAN_WINDOWS_FILE"`

	// FallbackYear designates the table entry used for unknown years (0 = earliest entry).
	// Ignored when WindowsFile sets its own fallback_year.
	FallbackYear int `env:"RAMADAN_FALLBACK_YEAR"`

	// StrictWindows turns an unknown year into an error instead of using the fallback.
	StrictWindows bool `env:"RAMADAN_STRICT_WINDOWS" default:"false"`

	// Timezone is the IANA zone in which timestamps become calendar dates.
	Timezone string `env:"RAMADAN_TIMEZONE" default:"UTC"`
}

// HasOverride reports whether an override window is configured.
func (c *CalendarConfig) HasOverride() bool {
	return !c.Start.IsZero() && !c.End.IsZero()
}

// Location loads the configured time zone.
func (c *CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid RAMADAN_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate validates the calendar configuration.
func (c *CalendarConfig) Validate() error {
	if c.Start.IsZero() != c.End.IsZero() {
		return ErrOverrideIncomplete
	}

	if c.HasOverride() && c.End.Before(c.Start) {
		return fmt.Errorf("RAMADAN_END %s is before RAMADAN_START %s", c.End, c.Start)
	}

	if c.FallbackYear < 0 {
		return fmt.Errorf("RAMADAN_FALLBACK_YEAR must be >= 0, got %d", c.FallbackYear)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Package calendar resolves which observance window is current and where a
// given moment falls inside it.
//
// Every function here is a pure computation over explicit inputs. Timestamps
// are turned into calendar dates once, in the engine's location, and all
// arithmetic after that is in whole days.
package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/rezkam/ramadan/internal/domain"
)

// Override is an explicit window that replaces table lookup for every year.
type Override struct {
	Start civil.Date
	End   civil.Date
}

// NewOverride validates an override pair.
func NewOverride(start, end civil.Date) (Override, error) {
	if _, err := NewWindow(start.Year, start, end); err != nil {
		return Override{}, fmt.Errorf("override: %w", err)
	}
	return Override{Start: start, End: end}, nil
}

// ResolveActiveYear picks the observance year that is current on today.
//
// The current calendar year and the next one are checked in order; the first
// with a known window that has not ended yet wins. This moves the app to next
// year's window the day after this year's ends. When neither qualifies the
// current calendar year is returned even if the table has no entry for it.
//
// With an override the table is bypassed and the override's start year is returned.
func ResolveActiveYear(today civil.Date, table Table, override *Override) int {
	if override != nil {
		return override.Start.Year
	}

	for _, year := range []int{today.Year, today.Year + 1} {
		w, ok := table.Lookup(year)
		if !ok {
			continue
		}
		if today.Before(w.End.AddDays(1)) {
			return year
		}
	}

	return today.Year
}

// WindowFor returns the window for year, looked up in priority order:
// override, table entry, table fallback. The returned window always carries
// the requested year. fallbackUsed reports whether the fallback entry was used.
func WindowFor(year int, table Table, override *Override) (w Window, fallbackUsed bool, err error) {
	if override != nil {
		w, err = NewWindow(year, override.Start, override.End)
		return w, false, err
	}

	if entry, ok := table.Lookup(year); ok {
		return entry, false, nil
	}

	fallback, ok := table.Fallback()
	if !ok {
		return Window{}, false, fmt.Errorf("%w: no window for year %d and no fallback", domain.ErrConfiguration, year)
	}

	fallback.Year = year
	return fallback, true, nil
}

// Resolution is the window and status for one moment.
type Resolution struct {
	Today        civil.Date
	Window       Window
	Status       Status
	FallbackUsed bool // The table had no entry for Window.Year
}

// Engine bundles the static configuration needed to answer calendar queries.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	table    Table
	override *Override
	location *time.Location
	strict   bool
}

// Option is a functional option for configuring Engine.
type Option func(*Engine)

// WithOverride makes every year resolve to the given window.
func WithOverride(o Override) Option {
	return func(e *Engine) {
		e.override = &o
	}
}

// WithLocation sets the time zone used to turn timestamps into dates.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithStrictWindows makes a year missing from the table an error
// instead of silently resolving to the fallback window.
func WithStrictWindows(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// NewEngine creates an Engine over table.
func NewEngine(table Table, opts ...Option) (*Engine, error) {
	e := &Engine{
		table:    table,
		location: time.UTC, // Default: dates are UTC calendar days
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.override == nil && table.Empty() {
		return nil, fmt.Errorf("%w: window table is empty", domain.ErrConfiguration)
	}

	return e, nil
}

// Location returns the time zone dates are computed in.
func (e *Engine) Location() *time.Location {
	return e.location
}

// Table returns the engine's window table.
func (e *Engine) Table() Table {
	return e.table
}

// Override returns the configured override, if any.
func (e *Engine) Override() (Override, bool) {
	if e.override == nil {
		return Override{}, false
	}
	return *e.override, true
}

// DateOf returns the calendar date of now in the engine's location.
func (e *Engine) DateOf(now time.Time) civil.Date {
	return civil.DateOf(now.In(e.location))
}

// ActiveYear returns the observance year current at now.
func (e *Engine) ActiveYear(now time.Time) int {
	return ResolveActiveYear(e.DateOf(now), e.table, e.override)
}

// Window returns the window for year. In strict mode a year missing
// from the table fails with ErrUnknownYear.
func (e *Engine) Window(year int) (Window, bool, error) {
	w, fallbackUsed, err := WindowFor(year, e.table, e.override)
	if err != nil {
		return Window{}, false, err
	}
	if fallbackUsed && e.strict {
		return Window{}, false, fmt.Errorf("%w %d", domain.ErrUnknownYear, year)
	}
	return w, fallbackUsed, nil
}

// Resolve returns the current window and its status at now.
func (e *Engine) Resolve(now time.Time) (Resolution, error) {
	today := e.DateOf(now)

	w, fallbackUsed, err := e.Window(ResolveActiveYear(today, e.table, e.override))
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Today:        today,
		Window:       w,
		Status:       StatusAt(w, today),
		FallbackUsed: fallbackUsed,
	}, nil
}

// Status returns the status of w at now.
func (e *Engine) Status(w Window, now time.Time) Status {
	return StatusAt(w, e.DateOf(now))
}

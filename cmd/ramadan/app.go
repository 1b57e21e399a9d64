package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rezkam/ramadan/internal/application/planner"
	"github.com/rezkam/ramadan/internal/calendar"
	"github.com/rezkam/ramadan/internal/config"
)

const instrumentationName = "github.com/rezkam/ramadan/cmd/ramadan"

// app holds what every command needs.
type app struct {
	planner *planner.Service
	now     func() time.Time

	tracer   trace.Tracer
	commands metric.Int64Counter
}

// newEngine builds the calendar engine from configuration.
// A windows file replaces the built-in table; its own fallback_year wins over
// RAMADAN_FALLBACK_YEAR.
func newEngine(cfg config.CalendarConfig) (*calendar.Engine, error) {
	table := calendar.DefaultTable()

	if cfg.WindowsFile != "" {
		f, err := os.Open(cfg.WindowsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open windows file: %w", err)
		}
		defer f.Close()

		table, err = calendar.LoadTable(f, cfg.FallbackYear)
		if err != nil {
			return nil, fmt.Errorf("failed to load windows file %s: %w", cfg.WindowsFile, err)
		}
	} else if cfg.FallbackYear != 0 {
		var err error
		table, err = calendar.NewTable(calendar.DefaultEntries(), cfg.FallbackYear)
		if err != nil {
			return nil, err
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	opts := []calendar.Option{
		calendar.WithLocation(loc),
		calendar.WithStrictWindows(cfg.StrictWindows),
	}

	if cfg.HasOverride() {
		override, err := calendar.NewOverride(cfg.Start, cfg.End)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calendar.WithOverride(override))
	}

	return calendar.NewEngine(table, opts...)
}

// newApp wires the planner and instruments from the global providers.
func newApp(engine *calendar.Engine, now func() time.Time) (*app, error) {
	commands, err := otel.Meter(instrumentationName).Int64Counter("ramadan.cli.commands",
		metric.WithDescription("Number of CLI commands run"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create command counter: %w", err)
	}

	return &app{
		planner:  planner.NewService(engine),
		now:      now,
		tracer:   otel.Tracer(instrumentationName),
		commands: commands,
	}, nil
}

// traced runs fn inside a span named after the command and counts the run.
func (a *app) traced(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "ramadan."+name)
	defer span.End()

	err := fn(ctx)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	a.commands.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", name),
		attribute.String("outcome", outcome),
	))

	return err
}

// parseAt reads an --at value: RFC 3339 timestamp or a bare date, which means
// midnight in the engine's location. Empty means now.
func (a *app) parseAt(value string) (time.Time, error) {
	if value == "" {
		return a.now(), nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	d, err := civil.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: want RFC 3339 or YYYY-MM-DD", value)
	}
	return d.In(a.planner.Engine().Location()), nil
}

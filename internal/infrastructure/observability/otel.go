// Package observability sets up logging, tracing and metrics for the ramadan
// binary. With export disabled everything stays local: spans and metrics go
// to in-process providers and logs are JSON lines on a writer. With export
// enabled all three signals are sent over OTLP/HTTP, configured by the
// standard OTEL_EXPORTER_OTLP_* and OTEL_RESOURCE_ATTRIBUTES variables.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// DefaultServiceName is the service name used when Config.ServiceName is empty.
	DefaultServiceName = "ramadan"

	exportTimeout = 10 * time.Second
)

// Config holds observability configuration.
type Config struct {
	Enabled     bool
	ServiceName string
	LogOutput   io.Writer // Local JSON log destination when export is disabled; nil discards
}

func (c Config) serviceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// newResource describes the binary: SDK defaults, environment attributes and
// the service name. A schema conflict between the merged parts is tolerated.
func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	own, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(semconv.ServiceName(cfg.serviceName())),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to describe service: %w", err)
	}

	res, err := resource.Merge(resource.Default(), own)
	if err != nil && !errors.Is(err, resource.ErrPartialResource) && !errors.Is(err, resource.ErrSchemaURLConflict) {
		return nil, fmt.Errorf("failed to merge resources: %w", err)
	}
	return res, nil
}

// InitLogger returns the structured logger for cfg and the provider behind it.
// With export enabled the logger is an otelslog bridge; otherwise it writes
// JSON to cfg.LogOutput.
func InitLogger(ctx context.Context, cfg Config) (*log.LoggerProvider, *slog.Logger, error) {
	if !cfg.Enabled {
		return log.NewLoggerProvider(), localLogger(cfg.LogOutput), nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return exportLogger(cfg, res)
}

func localLogger(out io.Writer) *slog.Logger {
	if out == nil {
		out = io.Discard
	}
	return slog.New(slog.NewJSONHandler(out, nil))
}

// Exporters are created with a background context so a cancelled command
// does not leave them unusable for the final flush.

func exportLogger(cfg Config, res *resource.Resource) (*log.LoggerProvider, *slog.Logger, error) {
	exporter, err := otlploghttp.New(context.Background(), otlploghttp.WithTimeout(exportTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	lp := log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(log.NewBatchProcessor(exporter, log.WithExportTimeout(5*time.Second))),
	)
	return lp, otelslog.NewLogger(cfg.serviceName(), otelslog.WithLoggerProvider(lp)), nil
}

func exportTracerProvider(res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(context.Background(), otlptracehttp.WithTimeout(exportTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	), nil
}

func exportMeterProvider(res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetrichttp.New(context.Background(), otlpmetrichttp.WithTimeout(exportTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	// Commands rarely live for a full interval; Shutdown sends what is left.
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second))),
	), nil
}

// Providers holds the logger and the providers that must be flushed on exit.
type Providers struct {
	Logger *slog.Logger

	loggerProvider *log.LoggerProvider
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// Init builds the logger, tracer provider and meter provider for cfg and
// registers the latter two as the otel globals. If a step fails, whatever was
// already started is shut down.
func Init(ctx context.Context, cfg Config) (*Providers, error) {
	p := &Providers{}

	if !cfg.Enabled {
		p.loggerProvider = log.NewLoggerProvider()
		p.Logger = localLogger(cfg.LogOutput)
		p.tracerProvider = sdktrace.NewTracerProvider()
		p.meterProvider = sdkmetric.NewMeterProvider()
		p.register()
		return p, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if p.loggerProvider, p.Logger, err = exportLogger(cfg, res); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	if p.tracerProvider, err = exportTracerProvider(res); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("failed to init tracer provider: %w", err)
	}
	if p.meterProvider, err = exportMeterProvider(res); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("failed to init meter provider: %w", err)
	}

	p.register()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

func (p *Providers) register() {
	otel.SetTracerProvider(p.tracerProvider)
	otel.SetMeterProvider(p.meterProvider)
}

// Shutdown flushes and stops every provider, returning all errors joined.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.meterProvider != nil {
		errs = append(errs, p.meterProvider.Shutdown(ctx))
	}
	if p.tracerProvider != nil {
		errs = append(errs, p.tracerProvider.Shutdown(ctx))
	}
	if p.loggerProvider != nil {
		errs = append(errs, p.loggerProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

package catalog

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/zero-day-ai/enumkit/catalog"

// Option configures catalog loading.
type Option func(*config)

// config holds the settings shared by Load and Parse.
type config struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithLogger sets the logger used while loading.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracerProvider sets the provider for load spans.
// If not provided, the global OpenTelemetry provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the provider for the load counter.
// If not provided, the global OpenTelemetry provider is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.tracerProvider == nil {
		c.tracerProvider = otel.GetTracerProvider()
	}
	if c.meterProvider == nil {
		c.meterProvider = otel.GetMeterProvider()
	}
	return c
}

func (c *config) tracer() trace.Tracer {
	return c.tracerProvider.Tracer(instrumentationName)
}

// loadCounter returns the load counter. Instrument creation errors are
// logged and a nil counter is returned; loading proceeds without it.
func (c *config) loadCounter() metric.Int64Counter {
	counter, err := c.meterProvider.Meter(instrumentationName).Int64Counter(
		"enumkit.catalog.loads",
		metric.WithDescription("Number of enum catalog loads by outcome"),
	)
	if err != nil {
		c.logger.Warn("failed to create catalog load counter", "error", err)
		return nil
	}
	return counter
}

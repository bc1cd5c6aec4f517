package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/querykit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for query execution.
type Metrics struct {
	queryTotal    metric.Int64Counter
	queryDuration metric.Float64Histogram
	elementTotal  metric.Int64Counter
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	queryTotal, err := meter.Int64Counter("query.executions",
		metric.WithDescription("Total number of executed queries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.executions counter: %w", err)
	}

	queryDuration, err := meter.Float64Histogram("query.duration",
		metric.WithDescription("Duration of query execution in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.duration histogram: %w", err)
	}

	elementTotal, err := meter.Int64Counter("query.elements",
		metric.WithDescription("Elements pulled through observed sequences"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.elements counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("query.errors",
		metric.WithDescription("Failed queries by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.errors counter: %w", err)
	}

	return &Metrics{
		queryTotal:    queryTotal,
		queryDuration: queryDuration,
		elementTotal:  elementTotal,
		errorTotal:    errorTotal,
	}, nil
}

// RecordQuery records one query execution.
func (m *Metrics) RecordQuery(ctx context.Context, query, status string, duration time.Duration) {
	m.queryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("query", query),
		attribute.String("status", status),
	))
	m.queryDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("query", query),
	))
}

// RecordElements adds n to the element count of query.
func (m *Metrics) RecordElements(ctx context.Context, query string, n int64) {
	m.elementTotal.Add(ctx, n, metric.WithAttributes(attribute.String("query", query)))
}

// RecordError records a failed query by error code.
func (m *Metrics) RecordError(ctx context.Context, query, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("query", query),
		attribute.String("code", code),
	))
}

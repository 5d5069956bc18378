package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type MetricsExporterKind string

const (
	MetricsNone       MetricsExporterKind = "none"
	MetricsStdout     MetricsExporterKind = "stdout"
	MetricsPrometheus MetricsExporterKind = "prometheus"
)

var ErrUnknownMetricsExporter = errors.New("unknown metrics exporter")

// ShutdownFunc flushes and stops the installed meter provider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error {
	return nil
}

// NewMetricsExporter installs the global meter provider of kind.
// The "none" kind keeps the otel noop provider.
func NewMetricsExporter(kind MetricsExporterKind, interval time.Duration, opts ...stdoutmetric.Option) (ShutdownFunc, error) {
	switch kind {
	case MetricsNone, "":
		return noopShutdown, nil
	case MetricsStdout:
		return NewConsoleMetricsExporter(interval, interval, opts...)
	case MetricsPrometheus:
		return NewPrometheusMetricsExporter()
	default:
	}
	return nil, ErrUnknownMetricsExporter
}

// Serves for test/dev environment.
func NewConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (ShutdownFunc, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	readerOpts := make([]metric.PeriodicReaderOption, 0, 2)
	if interval > 0 {
		readerOpts = append(readerOpts, metric.WithInterval(interval))
	}
	if timeout > 0 {
		readerOpts = append(readerOpts, metric.WithTimeout(timeout))
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		readerOpts...,
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
func NewPrometheusMetricsExporter() (ShutdownFunc, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

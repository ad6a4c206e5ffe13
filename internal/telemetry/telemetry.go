package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tutorhub/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Telemetry struct {
	MeterProvider *metric.MeterProvider
	Metrics       *metrics.Metrics
}

// InitMeterProvider exports metrics over OTLP/gRPC when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Without an endpoint it returns nil and
// the global no-op provider stays in place.
func InitMeterProvider(ctx context.Context, serviceName, serviceVersion string, logger *slog.Logger) (*metric.MeterProvider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		logger.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, metrics export disabled")
		return nil, nil
	}

	logger.Info("initializing OTel metrics", "endpoint", endpoint)

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	provider := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(10*time.Second))),
	)

	otel.SetMeterProvider(provider)
	logger.Info("OTel metrics initialized successfully")

	return provider, nil
}

func Init(ctx context.Context, serviceName, serviceVersion string, logger *slog.Logger) (*Telemetry, error) {
	provider, err := InitMeterProvider(ctx, serviceName, serviceVersion, logger)
	if err != nil {
		return nil, err
	}

	m, err := metrics.New(metrics.ServiceInfo{Name: serviceName, Version: serviceVersion}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return &Telemetry{
		MeterProvider: provider,
		Metrics:       m,
	}, nil
}

func (t *Telemetry) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if t == nil || t.MeterProvider == nil {
		return nil
	}
	logger.Info("shutting down OTel meter provider")
	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}

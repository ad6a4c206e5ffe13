package metrics

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Dependency names used as the "dependency" attribute.
const (
	DependencyPostgres     = "postgres"
	DependencyTutorService = "tutor-service"
)

// DependencyMetrics tracks availability and latency of the database and,
// for tutor-web, the tutor-service API.
type DependencyMetrics struct {
	dependencyUp           metric.Int64ObservableGauge
	dependencyResponseTime metric.Float64Histogram

	mu        sync.RWMutex
	available map[string]bool
}

func NewDependencyMetrics(meter metric.Meter) (*DependencyMetrics, error) {
	dm := &DependencyMetrics{
		available: make(map[string]bool),
	}

	var err error

	dm.dependencyUp, err = meter.Int64ObservableGauge(
		"dependency.up",
		metric.WithDescription("Dependency availability status (1=up, 0=down)"),
		metric.WithUnit("{status}"),
	)
	if err != nil {
		return nil, err
	}

	// Buckets: 1ms, 5ms, 10ms, 25ms, 50ms, 100ms, 250ms, 500ms, 1s, 2.5s, 5s, 10s
	dm.dependencyResponseTime, err = meter.Float64Histogram(
		"dependency.response_time",
		metric.WithDescription("Dependency call response time"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1,
			0.25, 0.5, 1.0, 2.5, 5.0, 10.0,
		),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.RegisterCallback(
		func(ctx context.Context, observer metric.Observer) error {
			dm.mu.RLock()
			defer dm.mu.RUnlock()

			for name, up := range dm.available {
				value := int64(0)
				if up {
					value = 1
				}
				observer.ObserveInt64(dm.dependencyUp, value,
					metric.WithAttributes(attribute.String("dependency", name)))
			}
			return nil
		},
		dm.dependencyUp,
	)
	if err != nil {
		return nil, err
	}

	return dm, nil
}

// RecordCheck records one call to dependency and marks it up or down.
func (dm *DependencyMetrics) RecordCheck(ctx context.Context, dependency string, duration time.Duration, err error) {
	if dm == nil || dm.dependencyResponseTime == nil {
		return
	}

	dm.dependencyResponseTime.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.String("dependency", dependency)))

	dm.mu.Lock()
	dm.available[dependency] = err == nil
	dm.mu.Unlock()
}

package metrics

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ServiceInfo identifies the process the runtime gauges describe.
type ServiceInfo struct {
	Name    string
	Version string
}

// RuntimeMetrics reports process health for one tutorhub service. Every
// observation carries the service name so tutor-service and tutor-web can
// share a dashboard.
type RuntimeMetrics struct {
	info    ServiceInfo
	started time.Time

	up         metric.Int64ObservableGauge
	uptime     metric.Float64ObservableCounter
	goroutines metric.Int64ObservableGauge
	heapBytes  metric.Int64ObservableGauge
	gcPause    metric.Float64ObservableCounter
}

func NewRuntimeMetrics(meter metric.Meter, info ServiceInfo) (*RuntimeMetrics, error) {
	rm := &RuntimeMetrics{
		info:    info,
		started: time.Now(),
	}

	var err error

	rm.up, err = meter.Int64ObservableGauge(
		"tutorhub.service.up",
		metric.WithDescription("Always 1 while the service runs; carries the build version"),
		metric.WithUnit("{status}"),
	)
	if err != nil {
		return nil, err
	}

	rm.uptime, err = meter.Float64ObservableCounter(
		"tutorhub.service.uptime",
		metric.WithDescription("Seconds since the service started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	rm.goroutines, err = meter.Int64ObservableGauge(
		"tutorhub.runtime.goroutines",
		metric.WithDescription("Number of live goroutines"),
		metric.WithUnit("{goroutine}"),
	)
	if err != nil {
		return nil, err
	}

	rm.heapBytes, err = meter.Int64ObservableGauge(
		"tutorhub.runtime.heap",
		metric.WithDescription("Bytes of allocated heap objects"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	rm.gcPause, err = meter.Float64ObservableCounter(
		"tutorhub.runtime.gc.pause",
		metric.WithDescription("Cumulative stop-the-world GC pause"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.RegisterCallback(rm.observe, rm.up, rm.uptime, rm.goroutines, rm.heapBytes, rm.gcPause)
	if err != nil {
		return nil, err
	}

	return rm, nil
}

func (rm *RuntimeMetrics) observe(_ context.Context, o metric.Observer) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	service := metric.WithAttributes(attribute.String("service.name", rm.info.Name))

	o.ObserveInt64(rm.up, 1, metric.WithAttributes(
		attribute.String("service.name", rm.info.Name),
		attribute.String("service.version", rm.info.Version),
	))
	o.ObserveFloat64(rm.uptime, time.Since(rm.started).Seconds(), service)
	o.ObserveInt64(rm.goroutines, int64(runtime.NumGoroutine()), service)
	o.ObserveInt64(rm.heapBytes, int64(mem.HeapAlloc), service)
	o.ObserveFloat64(rm.gcPause, time.Duration(mem.PauseTotalNs).Seconds(), service)

	return nil
}

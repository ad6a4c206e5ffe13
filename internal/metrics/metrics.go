package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics groups the collectors shared by both services. Every Record*
// method is a no-op on the value returned by NewMock.
type Metrics struct {
	Runtime      *RuntimeMetrics
	Database     *DatabaseMetrics
	Dependencies *DependencyMetrics

	tutorsCreated  metric.Int64Counter
	coursesCreated metric.Int64Counter
	registrations  metric.Int64Counter
	signins        metric.Int64Counter
	healthChecks   metric.Int64Counter
}

func New(info ServiceInfo, logger *slog.Logger) (*Metrics, error) {
	return NewWithMeter(otel.Meter(info.Name), info, logger)
}

func NewWithMeter(meter metric.Meter, info ServiceInfo, logger *slog.Logger) (*Metrics, error) {
	database, err := NewDatabaseMetrics(meter)
	if err != nil {
		return nil, err
	}

	runtime, err := NewRuntimeMetrics(meter, info)
	if err != nil {
		return nil, err
	}

	dependencies, err := NewDependencyMetrics(meter)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		Runtime:      runtime,
		Database:     database,
		Dependencies: dependencies,
	}

	m.tutorsCreated, err = meter.Int64Counter(
		"tutorhub.tutors.created",
		metric.WithDescription("Total number of tutors created"),
		metric.WithUnit("{tutor}"),
	)
	if err != nil {
		return nil, err
	}

	m.coursesCreated, err = meter.Int64Counter(
		"tutorhub.courses.created",
		metric.WithDescription("Total number of courses created"),
		metric.WithUnit("{course}"),
	)
	if err != nil {
		return nil, err
	}

	m.registrations, err = meter.Int64Counter(
		"tutorhub.users.registered",
		metric.WithDescription("Total number of completed registrations"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, err
	}

	m.signins, err = meter.Int64Counter(
		"tutorhub.users.signins",
		metric.WithDescription("Sign-in attempts by result"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	m.healthChecks, err = meter.Int64Counter(
		"tutorhub.health.checks",
		metric.WithDescription("Total number of health check calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("metrics collectors initialized successfully")
	return m, nil
}

// NewMock creates a no-op Metrics instance for testing
func NewMock() *Metrics {
	return &Metrics{Database: &DatabaseMetrics{}}
}

func (m *Metrics) RecordTutorCreated(ctx context.Context) {
	if m == nil || m.tutorsCreated == nil {
		return
	}
	m.tutorsCreated.Add(ctx, 1)
}

func (m *Metrics) RecordCourseCreated(ctx context.Context, tutorID int) {
	if m == nil || m.coursesCreated == nil {
		return
	}
	m.coursesCreated.Add(ctx, 1, metric.WithAttributes(attribute.Int("tutor_id", tutorID)))
}

func (m *Metrics) RecordRegistration(ctx context.Context) {
	if m == nil || m.registrations == nil {
		return
	}
	m.registrations.Add(ctx, 1)
}

func (m *Metrics) RecordSignin(ctx context.Context, success bool) {
	if m == nil || m.signins == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.signins.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *Metrics) RecordHealthCheck(ctx context.Context) {
	if m == nil || m.healthChecks == nil {
		return
	}
	m.healthChecks.Add(ctx, 1)
}

package app

import (
	"context"
	"log/slog"
	"net/http"

	"tutorhub/internal/config"
	"tutorhub/internal/course"
	"tutorhub/internal/health"
	"tutorhub/internal/metrics"
	tutormw "tutorhub/internal/middleware"
	"tutorhub/internal/tutor"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
)

// NewTutorService builds the JSON API over the tutors and courses tables.
func NewTutorService(ctx context.Context) (*App, error) {
	app, err := bootstrap(ctx, TutorServiceName, (*tutor.Tutor)(nil), (*course.Course)(nil))
	if err != nil {
		return nil, err
	}

	app.handler = NewTutorServiceRouter(app.config, app.db, app.telemetry.Metrics, app.logger)

	app.logger.Info("application initialized successfully")
	return app, nil
}

// NewTutorServiceRouter wires handlers, services and repositories onto one
// chi router.
func NewTutorServiceRouter(cfg *config.Config, database *bun.DB, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(tutormw.CORS(cfg.Server.AllowedOrigins))
	router.Use(tutormw.RequestLogger(logger))

	healthHandler := health.NewHandler(cfg.Health.Message, database, logger, m)
	healthHandler.RegisterRoutes(router)

	tutorRepo := tutor.NewRepository(database, m)
	tutorService := tutor.NewService(tutorRepo)
	tutorHandler := tutor.NewHandler(tutorService, logger, m)
	tutorHandler.RegisterRoutes(router)

	courseRepo := course.NewRepository(database, m)
	courseService := course.NewService(courseRepo)
	courseHandler := course.NewHandler(courseService, logger, m)
	courseHandler.RegisterRoutes(router)

	return router
}

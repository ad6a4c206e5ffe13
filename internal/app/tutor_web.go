package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tutorhub/internal/auth"
	"tutorhub/internal/config"
	"tutorhub/internal/courseproxy"
	"tutorhub/internal/metrics"
	"tutorhub/internal/middleware"
	"tutorhub/internal/tutorclient"
	"tutorhub/internal/user"

	"github.com/gorilla/mux"
	"github.com/uptrace/bun"
)

// NewTutorWeb builds the server-rendered front end. It owns the users table
// and reaches tutors and courses through tutor-service.
func NewTutorWeb(ctx context.Context) (*App, error) {
	app, err := bootstrap(ctx, TutorWebName, (*user.User)(nil))
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(app.config.TutorService.TimeoutSeconds) * time.Second
	client := tutorclient.NewClient(app.config.TutorService.BaseURL, timeout).
		WithDependencyMetrics(app.telemetry.Metrics.Dependencies)
	app.logger.Info("tutor-service client configured", "base_url", app.config.TutorService.BaseURL, "timeout", timeout)

	app.handler = NewTutorWebRouter(app.config, app.db, client, app.telemetry.Metrics, app.logger)

	app.logger.Info("application initialized successfully")
	return app, nil
}

func NewTutorWebRouter(cfg *config.Config, database *bun.DB, client *tutorclient.Client, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))),
	)

	userRepo := user.NewRepository(database, m)
	authHandler := auth.NewHandler(userRepo, client, logger, m)
	authHandler.RegisterRoutes(router)

	courseHandler := courseproxy.NewHandler(client, logger)
	courseHandler.RegisterRoutes(router)

	return router
}

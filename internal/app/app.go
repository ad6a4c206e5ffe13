package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tutorhub/internal/config"
	"tutorhub/internal/db"
	"tutorhub/internal/logger"
	"tutorhub/internal/telemetry"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
)

type App struct {
	name      string
	config    *config.Config
	handler   http.Handler
	server    *http.Server
	logger    *slog.Logger
	db        *bun.DB
	telemetry *telemetry.Telemetry
}

// bootstrap performs the steps both services share: logger, config,
// telemetry and a verified database connection with its tables in place.
func bootstrap(ctx context.Context, name string, models ...interface{}) (*App, error) {
	slogLogger := logger.NewWithServiceContext(name, Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application", "git_commit", GitCommit, "build_time", BuildTime)

	cfg, err := config.Load(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env, "address", cfg.Server.Address)

	tel, err := telemetry.Init(ctx, name, Version, slogLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := tel.Metrics.Database.RegisterDB(database.DB, otel.Meter(name)); err != nil {
		slogLogger.Warn("failed to register database pool metrics", "error", err)
	}

	if err := db.RunMigrations(ctx, database, models...); err != nil {
		db.Close(database)
		return nil, err
	}

	return &App{
		name:      name,
		config:    cfg,
		logger:    slogLogger,
		db:        database,
		telemetry: tel,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      a.handler,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "service", a.name, "address", a.config.Server.Address)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	var errs []error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	if err := a.telemetry.Shutdown(ctx, a.logger); err != nil {
		errs = append(errs, err)
	}
	db.Close(a.db)

	return errors.Join(errs...)
}

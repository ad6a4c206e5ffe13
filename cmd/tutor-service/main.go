package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhub/internal/app"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	application, err := app.NewTutorService(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("service", "tutor-service").Msg("Failed to initialize application")
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

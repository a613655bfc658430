package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pdv-survey-api/internal/api"
	"github.com/pdv-survey-api/internal/auth"
	"github.com/pdv-survey-api/internal/config"
	"github.com/pdv-survey-api/internal/service"
	"github.com/pdv-survey-api/internal/sheetstore"
	"github.com/pdv-survey-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting PDV survey API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Spreadsheet access happens with each caller's own token, so the
	// factory only needs to know which document backs the service.
	stores := sheetstore.NewGoogleFactory(cfg.Sheets.SpreadsheetID)

	// Initialize identity resolution
	resolver := auth.NewGoogleResolver(stores, cfg, log)

	// Initialize services
	services := service.NewServices(stores, cfg, log)

	// Initialize router
	router := api.NewRouter(services, resolver, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

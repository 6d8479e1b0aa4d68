// Package main implements the entry point for the fit-project server, a REST
// backend for a fitness-tracking application: user profiles, exercise videos,
// favourites and completion tracking.
package main

import (
	"context"
	"log"

	"github.com/MartaCamacho/fit-project-server/internal/config"
	"github.com/MartaCamacho/fit-project-server/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

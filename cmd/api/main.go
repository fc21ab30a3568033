package main

import (
	"os"

	"github.com/appdevg5/schedease/internal/pkg/logger" // Still needed for initial error logging
	"github.com/appdevg5/schedease/internal/server"
)

// @title SchedEase API
// @version 1.0
// @description API for planning course enrollment: candidate offerings, weekly schedules and bulk cleanup
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@schedease.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}

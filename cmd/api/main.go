package main

import (
	"context"
	"os"

	"github.com/sis-eval/backend/internal/pkg/logger"
	"github.com/sis-eval/backend/internal/server"
)

// @title SIS-Eval API
// @version 1.0
// @description Professor records and peer evaluations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

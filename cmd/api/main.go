package main

import (
	"os"

	"github.com/edunexus/edunexus-backend/internal/pkg/logger"
	"github.com/edunexus/edunexus-backend/internal/server"
)

// @title EduNexus API
// @version 1.0
// @description Backend API for the EduNexus learning platform

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campusreg/deptregistry/internal/pkg/logger"
	"github.com/campusreg/deptregistry/internal/server"
)

func main() {
	// Missing .env is fine, environment variables may come from the host.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

package main

import (
	"crowd/config"
	"crowd/di"
	"crowd/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Crowd API
// @version 1.0
// @description Appointment slot allocation across service centers.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}

package di

import (
	"context"
	"crowd/config"
	"crowd/infras/database"
	"crowd/infras/events"
	"crowd/infras/otel"

	"github.com/rs/zerolog/log"
)

func provideDatabase(cfg *config.Config) (*database.Connection, func(), error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}, nil
}

func provideEvents(cfg *config.Config, otl otel.Otel) (events.Bus, func(), error) {
	bus, err := events.New(cfg, otl)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return bus, func() {
		if err := bus.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close events bus")
		}
	}, nil
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	otl := otel.New(cfg)

	return otl, func() {
		if err := otl.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shut down tracer provider")
		}
	}
}

package main

import (
	"crowd/config"
	"crowd/helper"
	"crowd/shared/logger"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
)

var actions = []string{helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop}

func main() {
	cfg := config.Get()
	logger.InitLogger(cfg)

	if len(os.Args) < 2 || !slices.Contains(actions, os.Args[1]) {
		log.Fatal().Strs("actions", actions).Msg("usage: migrate <action>")
	}

	action := os.Args[1]

	log.Info().Str("driver", cfg.DB.Driver).Str("action", action).Msg("running slot database migrations")

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migration failed")
	}
}

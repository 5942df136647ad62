package main

import (
	"context"
	"crowd/config"
	"crowd/di"
	"crowd/infras/events"
	"crowd/shared/logger"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// notifier drains booking notifications from the events bus and delivers them as SMS.
// Delivery is simulated by logging the message.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	bus, cleanup, err := di.InitializeNotifier()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize notifier")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("driver", cfg.Events.Driver).Msg("Notifier listening for booking events")

	err = bus.Subscribe(ctx, func(_ context.Context, n events.Notification) error {
		log.Info().
			Str("type", n.Type).
			Str("request_id", n.RequestID).
			Str("phone", n.Phone).
			Msg("SMS sent: " + n.Message)

		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Notifier stopped")
	}
}

package events_test

import (
	"context"
	"crowd/config"
	"crowd/infras/events"
	"crowd/infras/otel/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToNoop(t *testing.T) {
	cfg := &config.Config{}

	bus, err := events.New(cfg, mocks.NewOtel())
	require.NoError(t, err)

	err = bus.Publish(context.Background(), events.Notification{
		Type:      events.TypeBookingConfirmed,
		RequestID: "REQ1",
		Message:   "Dear Citizen",
	})
	assert.NoError(t, err)
	assert.NoError(t, bus.Close())
}

func TestNew_KafkaWithoutBrokers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Events.Driver = "kafka"

	_, err := events.New(cfg, mocks.NewOtel())
	assert.Error(t, err)
}

func TestNoop_SubscribeReturnsOnCancel(t *testing.T) {
	bus := events.NewNoop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := bus.Subscribe(ctx, func(context.Context, events.Notification) error { return nil })
	assert.NoError(t, err)
}

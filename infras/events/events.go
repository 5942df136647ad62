package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"crowd/config"
	"crowd/infras/kafka"
	"crowd/infras/otel"
	"crowd/infras/rabbitmq"
	"crowd/shared/constant"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	TypeBookingConfirmed   = "booking.confirmed"
	TypeBookingRescheduled = "booking.rescheduled"

	bindingAll = "booking.#"
)

// Notification is the simulated SMS sent to the applicant.
type Notification struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id"`
	CenterID   string    `json:"center_id"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Handler func(ctx context.Context, notification Notification) error

type Publisher interface {
	Publish(ctx context.Context, notifications ...Notification) error
}

type Bus interface {
	Publisher
	Subscribe(ctx context.Context, handler Handler) error
	Close() error
}

// New picks the broker from EVENTS_DRIVER. An empty or unknown driver yields a bus that only logs.
func New(cfg *config.Config, otl otel.Otel) (Bus, error) {
	switch cfg.Events.Driver {
	case constant.EventsDriverKafka:
		client, err := kafka.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating kafka bus: %w", err)
		}

		return &kafkaBus{client: client, otel: otl}, nil
	case constant.EventsDriverRabbitMQ:
		client, err := rabbitmq.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating rabbitmq bus: %w", err)
		}

		return &rabbitBus{client: client, otel: otl}, nil
	default:
		log.Warn().Str("driver", cfg.Events.Driver).Msg("No events driver configured, notifications are only logged")

		return NewNoop(), nil
	}
}

type kafkaBus struct {
	client kafka.Client
	otel   otel.Otel
}

func (b *kafkaBus) Publish(ctx context.Context, notifications ...Notification) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".kafka.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]kafka.Message, 0, len(notifications))
	for _, n := range notifications {
		messages = append(messages, kafka.Message{Key: n.RequestID, Value: n})
	}

	return b.client.SendMessages(ctx, messages...) //nolint:wrapcheck
}

func (b *kafkaBus) Subscribe(ctx context.Context, handler Handler) error {
	return b.client.Consume(ctx, func(ctx context.Context, message kafkaGo.Message) { //nolint:wrapcheck
		var n Notification
		if err := json.Unmarshal(message.Value, &n); err != nil {
			log.Error().Err(err).Str("key", string(message.Key)).Msg("Failed to decode notification")

			return
		}

		if err := handler(ctx, n); err != nil {
			log.Error().Err(err).Str("request_id", n.RequestID).Msg("Failed to handle notification")
		}
	})
}

func (b *kafkaBus) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type rabbitBus struct {
	client rabbitmq.Client
	otel   otel.Otel
}

func (b *rabbitBus) Publish(ctx context.Context, notifications ...Notification) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, n := range notifications {
		if err = b.client.PublishJSON(ctx, n.Type, n); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (b *rabbitBus) Subscribe(ctx context.Context, handler Handler) error {
	return b.client.Consume(ctx, bindingAll, func(ctx context.Context, body []byte) error { //nolint:wrapcheck
		var n Notification
		if err := json.Unmarshal(body, &n); err != nil {
			return fmt.Errorf("decode notification: %w", err)
		}

		return handler(ctx, n)
	})
}

func (b *rabbitBus) Close() error {
	return b.client.Close() //nolint:wrapcheck
}

type noopBus struct{}

func NewNoop() Bus {
	return noopBus{}
}

func (noopBus) Publish(_ context.Context, notifications ...Notification) error {
	for _, n := range notifications {
		log.Info().Str("type", n.Type).Str("request_id", n.RequestID).Str("phone", n.Phone).Msg(n.Message)
	}

	return nil
}

func (noopBus) Subscribe(ctx context.Context, _ Handler) error {
	<-ctx.Done()

	return nil
}

func (noopBus) Close() error {
	return nil
}

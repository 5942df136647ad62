package rabbitmq

import (
	"context"
	"crowd/config"
	"crowd/shared/constant"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

// Client publishes JSON bodies to a durable topic exchange and consumes them through a durable queue.
type Client interface {
	PublishJSON(ctx context.Context, routingKey string, value any) error
	Consume(ctx context.Context, bindingKey string, handler func(ctx context.Context, body []byte) error) error
	Close() error
}

type rabbitClient struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

func New(config *config.Config) (Client, error) {
	cfg := config.Events.RabbitMQ

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ client initialized")

	return &rabbitClient{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
	}, nil
}

func (c *rabbitClient) PublishJSON(ctx context.Context, routingKey string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = c.ch.PublishWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("Failed to publish message to RabbitMQ")

		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}

// Consume declares the configured queue, binds it and acks each delivery whose handler succeeds.
// Failed deliveries are nacked without requeue.
func (c *rabbitClient) Consume(ctx context.Context, bindingKey string, handler func(ctx context.Context, body []byte) error) error {
	q, err := c.ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := c.ch.QueueBind(q.Name, bindingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s: %w", bindingKey, err)
	}

	deliveries, err := c.ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.Name, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(ctx, delivery.Body); err != nil {
				log.Error().Err(err).Str("routing_key", delivery.RoutingKey).Msg("Failed to handle delivery")

				_ = delivery.Nack(false, false)

				continue
			}

			_ = delivery.Ack(false)
		}
	}
}

func (c *rabbitClient) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}

	return nil
}

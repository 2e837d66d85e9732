// Package publisher announces article lifecycle events on a RabbitMQ topic
// exchange. Each event type gets its own routing key below the configured
// prefix, e.g. articles.lifecycle.published.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"newsdesk/internal/domain"
)

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	prefix   string
	logger   *slog.Logger
}

type Config struct {
	URL      string
	Exchange string
	// RoutingKey is the prefix of every event routing key.
	RoutingKey string
	// QueueName, when set, is declared and bound to all lifecycle events.
	QueueName string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	r := &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefix:   strings.TrimSuffix(cfg.RoutingKey, "."),
		logger:   logger.With("component", "publisher"),
	}

	if err := r.declare(cfg.QueueName); err != nil {
		r.Close()
		return nil, err
	}

	r.logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_prefix", r.prefix,
	)

	return r, nil
}

func (r *RabbitMQ) declare(queue string) error {
	if err := r.channel.ExchangeDeclare(r.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if queue == "" {
		return nil
	}

	q, err := r.channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := r.channel.QueueBind(q.Name, r.prefix+".#", r.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// RoutingKey maps an event type onto its routing key.
func (r *RabbitMQ) RoutingKey(t domain.EventType) string {
	name := string(t)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return r.prefix + "." + name
}

// Publish sends one lifecycle event. The event type is also carried in the
// AMQP type property so consumers can filter without decoding the body.
func (r *RabbitMQ) Publish(ctx context.Context, event domain.LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := r.RoutingKey(event.Type)
	err = r.channel.PublishWithContext(ctx, r.exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         string(event.Type),
		MessageId:    uuid.NewString(),
		Body:         body,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	r.logger.Debug("published lifecycle event",
		"type", event.Type,
		"routing_key", key,
		"article_id", event.ArticleID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

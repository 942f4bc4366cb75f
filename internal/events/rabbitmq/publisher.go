// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/microshop/services/internal/events"
)

const (
	// ExchangeName is the topic exchange all order events go through.
	ExchangeName = "order_exchange"

	// OrderCreatedRoutingKey routes OrderCreated events.
	OrderCreatedRoutingKey = "order.created"
)

// Publisher implements events.Publisher on top of an AMQP connection.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New connects to the broker at url and declares the exchange. The
// connection is retried a few times with increasing backoff because the
// broker usually starts alongside the services.
func New(url string) (*Publisher, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		retryIn := time.Duration(i*i)*time.Second + time.Second
		slog.Warn("rabbitmq connection failed, retrying", "in", retryIn, "error", err)
		time.Sleep(retryIn)
	}
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: connect after retries: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishOrderCreated emits one OrderCreated event.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event events.OrderCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		ExchangeName,
		OrderCreatedRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.EventID,
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: publish order created: %w", err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

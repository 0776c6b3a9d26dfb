package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

var ErrNilEvent = errors.New("event cannot be nil")

const publishTimeout = 5 * time.Second

// Publisher delivers ledger events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event *LedgerEvent) error
	Close() error
}

// amqpChannel is the subset of *amqp091.Channel the publisher uses
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes ledger events to a durable topic exchange, routed by event type
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      amqpChannel
	exchangeName string
	queueName    string
}

// NewAMQPPublisher dials the broker and declares the exchange and audit queue
func NewAMQPPublisher(url, exchangeName, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher, err := newAMQPPublisherWithChannel(channel, exchangeName, queueName)
	if err != nil {
		conn.Close()
		return nil, err
	}
	publisher.conn = conn

	return publisher, nil
}

func newAMQPPublisherWithChannel(channel amqpChannel, exchangeName, queueName string) (*AMQPPublisher, error) {
	publisher := &AMQPPublisher{
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := publisher.setup(); err != nil {
		channel.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return publisher, nil
}

func (p *AMQPPublisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// The audit queue receives every ledger event
	err = p.channel.QueueBind(
		p.queueName,    // queue name
		"#",            // routing key
		p.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish sends the event as a persistent JSON message routed by its type
func (p *AMQPPublisher) Publish(ctx context.Context, event *LedgerEvent) error {
	if event == nil {
		return ErrNilEvent
	}

	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		event.Type,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.ID.String(),
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	slog.DebugContext(ctx, "Published ledger event",
		"event_id", event.ID.String(),
		"type", event.Type,
		"exchange", p.exchangeName)

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, event *LedgerEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

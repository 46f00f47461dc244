package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/messaging"
)

// AmqpPublisher pushes lock lifecycle events to a RabbitMQ queue.
// Publishing is best effort; the lock store is the source of truth and
// never waits on the broker.
type AmqpPublisher struct {
	url          string
	queue        string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAmqpPublisher connects to the broker and declares the event queue.
// The queue is durable and messages are persistent so events survive
// broker restarts.
func NewAmqpPublisher(url, queue string, logger coreport.Logger, timeProvider coreport.TimeProvider) (*AmqpPublisher, error) {
	p := &AmqpPublisher{
		url:          url,
		queue:        queue,
		logger:       logger,
		timeProvider: timeProvider,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("Connected to message broker", map[string]any{
		"queue": queue,
	})

	return p, nil
}

// connect dials the broker and declares the queue. Caller must hold no lock.
func (p *AmqpPublisher) connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

// PublishLockEvent marshals the event and publishes it to the queue.
// A stale channel triggers one reconnect attempt before giving up.
func (p *AmqpPublisher) PublishLockEvent(ctx context.Context, event messaging.LockEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal lock event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.timeProvider.Now().UTC(),
		Body:         body,
	}

	if err := p.publish(ctx, pub); err != nil {
		p.logger.Warn("Publish failed, reconnecting to broker", map[string]any{
			"error": err.Error(),
		})
		if err := p.connect(); err != nil {
			return err
		}
		return p.publish(ctx, pub)
	}

	return nil
}

func (p *AmqpPublisher) publish(ctx context.Context, pub amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return fmt.Errorf("broker channel is not open")
	}

	return p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	)
}

// Close shuts down the channel and connection
func (p *AmqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

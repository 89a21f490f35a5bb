// Package queue_publisher publishes domain events to RabbitMQ. Errors
// are logged and returned so callers can ignore failures without
// interrupting the main request flow; a lost event never fails the
// HTTP request that produced it.
package queue_publisher

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/loopcinemas/loop-api/internal/logger"
	q "github.com/loopcinemas/loop-api/internal/queue"
)

// Publisher holds the broker URL. Connections are dialed per publish;
// volume is low enough that pooling is not worth the state.
type Publisher struct {
	URL string
}

func New(url string) *Publisher { return &Publisher{URL: url} }

// PublishReviewSubmitted sends a ReviewSubmittedEvent to the
// review.submitted queue.
func (p *Publisher) PublishReviewSubmitted(ctx context.Context, ev q.ReviewSubmittedEvent) error {
	return p.publish(ctx, q.ReviewSubmittedQueue, ev)
}

// PublishReservationConfirmed sends a ReservationConfirmedEvent to the
// reservation.confirmed queue.
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, ev q.ReservationConfirmedEvent) error {
	return p.publish(ctx, q.ReservationConfirmedQueue, ev)
}

// publish declares the durable queue (idempotent) and sends one
// persistent JSON message to it via the default exchange.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	log := logger.Get()

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}

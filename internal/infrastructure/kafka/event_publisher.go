package kafka

import (
	"context"
	"time"

	"github.com/pos-platform/inventory-service/pkg/kafka"
	"github.com/pos-platform/inventory-service/pkg/logging"
	"github.com/pos-platform/inventory-service/pkg/metrics"

	"github.com/pos-platform/inventory-service/internal/domain"
)

const eventSource = "pos-inventory-service"

// EventPublisher publishes domain events to the inventory events topic.
// Publishing is fire and forget: Publish returns as soon as the message
// is handed to the producer, and failures are logged and counted rather
// than surfaced to the business operation.
type EventPublisher struct {
	producer *kafka.CircuitBreakerProducer
	topic    string
	metrics  *metrics.Metrics
	logger   *logging.Logger
}

// NewEventPublisher creates a new EventPublisher
func NewEventPublisher(producer *kafka.CircuitBreakerProducer, m *metrics.Metrics, logger *logging.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    kafka.Topics.InventoryEvents,
		metrics:  m,
		logger:   logger,
	}
}

// Publish sends a domain event to the inventory events topic
func (p *EventPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	envelope := kafka.NewEvent(event.EventType(), eventSource, event.Subject(), event)
	envelope.Time = event.OccurredAt()

	start := time.Now()

	// Detach from the request context so an early response doesn't
	// cancel the publish mid-flight.
	p.producer.PublishEventAsync(context.WithoutCancel(ctx), p.topic, envelope, func(err error) {
		if p.metrics != nil {
			p.metrics.RecordKafkaPublish(p.topic, event.EventType(), err == nil, time.Since(start))
		}

		if err != nil {
			p.logger.Warn("Failed to publish event",
				"topic", p.topic,
				"eventType", event.EventType(),
				"error", err,
			)
			return
		}

		p.logger.Debug("Published event",
			"topic", p.topic,
			"eventType", event.EventType(),
			"subject", event.Subject(),
		)
	})

	return nil
}

// Close closes the underlying producer
func (p *EventPublisher) Close() error {
	return p.producer.Close()
}

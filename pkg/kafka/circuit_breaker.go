package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the broker circuit breaker rejects a publish
var ErrCircuitOpen = errors.New("kafka circuit breaker is open")

// CircuitBreakerProducer wraps Producer with circuit breaker protection so a
// broker outage cannot stall request handling.
type CircuitBreakerProducer struct {
	producer *Producer
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// NewCircuitBreakerProducer creates a circuit breaker protected Kafka producer
func NewCircuitBreakerProducer(producer *Producer, logger *slog.Logger) *CircuitBreakerProducer {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "kafka-producer",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures >= 5 || failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &CircuitBreakerProducer{
		producer: producer,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
	}
}

// PublishEvent publishes an event with circuit breaker protection
func (p *CircuitBreakerProducer) PublishEvent(ctx context.Context, topic string, event *Event) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.producer.PublishEvent(ctx, topic, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}

// PublishEventAsync publishes an event asynchronously with circuit breaker protection
func (p *CircuitBreakerProducer) PublishEventAsync(ctx context.Context, topic string, event *Event, callback func(error)) {
	if p.breaker.State() == gobreaker.StateOpen {
		if callback != nil {
			callback(ErrCircuitOpen)
		}
		return
	}

	go func() {
		err := p.PublishEvent(ctx, topic, event)
		if callback != nil {
			callback(err)
		}
	}()
}

// State returns the current circuit breaker state
func (p *CircuitBreakerProducer) State() gobreaker.State {
	return p.breaker.State()
}

// Close closes the underlying producer
func (p *CircuitBreakerProducer) Close() error {
	return p.producer.Close()
}

package messaging

import (
	"context"
	"log/slog"

	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/pkg/events"
	"github.com/gatewise/payment-router/pkg/kafka"
)

// Publisher bridges domain events onto Kafka. Messages are keyed by aggregate
// ID so events for one routing decision land on one partition in order.
type Publisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

var _ port.EventPublisher = (*Publisher)(nil)

func NewPublisher(producer *kafka.Producer, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: evt.Payload(),
			Headers: map[string]string{
				"event_id":       evt.EventID().String(),
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return err
	}

	for _, evt := range evts {
		p.logger.Debug("event published",
			"topic", topic,
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
		)
	}
	return nil
}

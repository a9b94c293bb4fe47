package event

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nikita1503agarwal/storefront-backend/internal/storage/mq"
	"github.com/nikita1503agarwal/storefront-backend/pkg/ptr"
)

// Publisher emits domain events after successful persistence. Publishing is
// best-effort: failures are logged and never fail the originating request.
// A nil Publisher is valid and publishes nothing.
type Publisher struct {
	logger   *slog.Logger
	producer mq.Producer
}

func NewPublisher(logger *slog.Logger, producer mq.Producer) *Publisher {
	return &Publisher{
		logger:   logger.With(slog.String("service", "events")),
		producer: producer,
	}
}

func (p *Publisher) ProductCreated(ctx context.Context, ev ProductCreatedEvent) {
	p.publish(ctx, TopicProductCreated, ev.ProductID, ev)
}

func (p *Publisher) OrderReceived(ctx context.Context, ev OrderReceivedEvent) {
	p.publish(ctx, TopicOrderReceived, ev.OrderID, ev)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, ev any) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		p.logger.ErrorContext(ctx, "error marshaling event",
			slog.String("topic", topic), slog.Any("error", err))
		return
	}

	msg := mq.ProduceMsg{
		Topic:        topic,
		Payload:      payload,
		PartitionKey: ptr.New(key),
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		p.logger.WarnContext(ctx, "error publishing event",
			slog.String("topic", topic), slog.Any("error", err))
	}
}

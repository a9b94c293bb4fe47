package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nikita1503agarwal/storefront-backend/internal/storage/mq"
)

// Service consumes the domain events this backend publishes.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := registerHandler(s.mqConsumer, TopicProductCreated, s.handleProductCreated); err != nil {
		return nil, err
	}
	if err := registerHandler(s.mqConsumer, TopicOrderReceived, s.handleOrderReceived); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

func registerHandler[T any](c mq.Consumer, topic string, handle func(ctx context.Context, ev T) error) error {
	if err := c.RegisterHandler(topic, func(ctx context.Context, topic string, payload []byte) error {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("register %s event handler: %w", topic, err)
	}

	return nil
}

func (s *Service) handleProductCreated(ctx context.Context, ev ProductCreatedEvent) error {
	s.logger.InfoContext(ctx, "handling product created event", slog.Any("event", ev))
	return nil
}

func (s *Service) handleOrderReceived(ctx context.Context, ev OrderReceivedEvent) error {
	s.logger.InfoContext(ctx, "handling order received event", slog.Any("event", ev))
	return nil
}

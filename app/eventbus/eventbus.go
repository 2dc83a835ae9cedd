// Package eventbus publishes scoring domain events.
//
// With a NATS URL configured events go to core NATS subjects through watermill;
// without one they go to an in-process channel so the engine runs standalone.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

// Topics emitted by the scoring module.
const (
	TopicEntryConfirmed      = "scoring.entry.confirmed.v1"
	TopicEntryDiscrepancy    = "scoring.entry.discrepancy.v1"
	TopicDiscrepancyResolved = "scoring.discrepancy.resolved.v1"
	TopicGameWinner          = "scoring.game.winner.v1"
)

const correlationIDMetadataKey = "correlation_id"

// EventBus publishes domain events. It is satisfied by any watermill Publisher.
type EventBus interface {
	Publish(topic string, msgs ...*message.Message) error
	Close() error
}

// eventBus wraps a watermill publisher with logging.
type eventBus struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// NewEventBus returns a NATS-backed bus when natsURL is set, otherwise an
// in-process gochannel bus.
func NewEventBus(natsURL string, logger *slog.Logger) (EventBus, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watermillLogger := watermill.NewSlogLogger(logger)

	if natsURL == "" {
		logger.Info("No NATS URL configured, using in-process event bus")
		return &eventBus{
			publisher: gochannel.NewGoChannel(gochannel.Config{}, watermillLogger),
			logger:    logger,
		}, nil
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:       natsURL,
			Marshaler: &nats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
			JetStream: nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill publisher", attr.Error(err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	return &eventBus{publisher: publisher, logger: logger}, nil
}

// NewWithPublisher wraps an existing publisher, e.g. a gochannel shared with a
// subscriber in tests.
func NewWithPublisher(publisher message.Publisher, logger *slog.Logger) EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventBus{publisher: publisher, logger: logger}
}

func (eb *eventBus) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
	}

	if err := eb.publisher.Publish(topic, msgs...); err != nil {
		eb.logger.Error("Failed to publish message", attr.String("topic", topic), attr.Error(err))
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	eb.logger.Debug("Message published", attr.String("topic", topic), attr.Int("count", len(msgs)))
	return nil
}

func (eb *eventBus) Close() error {
	return eb.publisher.Close()
}

// NewJSONMessage encodes payload as a watermill message carrying the context's
// correlation id.
func NewJSONMessage(ctx context.Context, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	if id := attr.CorrelationID(ctx); id != "" {
		msg.Metadata.Set(correlationIDMetadataKey, id)
	}
	return msg, nil
}

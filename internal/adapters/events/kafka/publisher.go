package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

const DefaultTopic = "pto-ledger-events"

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes ledger events to one Kafka topic, keyed by employee so that events for
// the same employee land on the same partition in order.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

var _ events.Publisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EmployeeID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

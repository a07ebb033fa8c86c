// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shipment/internal/adapters/out/events"
	"shipment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StatusChangeProducer writes one message per status change, keyed by order
// id so that all changes of an order land on the same partition in order.
type StatusChangeProducer struct {
	writer messageWriter
	logger *slog.Logger
}

func NewStatusChangeProducer(brokers []string, topic string, logger *slog.Logger) *StatusChangeProducer {
	return newStatusChangeProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}, logger)
}

func newStatusChangeProducer(writer messageWriter, logger *slog.Logger) *StatusChangeProducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusChangeProducer{writer: writer, logger: logger.With("component", "KafkaStatusChangeProducer")}
}

func (p *StatusChangeProducer) Publish(ctx context.Context, changes ...order.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(changes))
	for _, c := range changes {
		value, err := json.Marshal(events.NewStatusChanged(c))
		if err != nil {
			return fmt.Errorf("encode status change of order %s: %w", c.OrderID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(c.OrderID.String()),
			Value: value,
			Time:  c.At,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d status change messages: %w", len(msgs), err)
	}
	p.logger.DebugContext(ctx, "published status changes", "count", len(msgs))
	return nil
}

func (p *StatusChangeProducer) Close() error {
	return p.writer.Close()
}

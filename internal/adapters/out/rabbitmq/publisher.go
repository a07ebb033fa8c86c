// Package rabbitmq publishes order status changes to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shipment/internal/adapters/out/events"
	"shipment/internal/core/domain/model/order"

	"github.com/streadway/amqp"
)

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// StatusChangePublisher sends each change with routing key
// order.status.<new status>, e.g. order.status.intransit.
type StatusChangePublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	logger   *slog.Logger
}

// NewStatusChangePublisher dials url and declares a durable topic exchange.
func NewStatusChangePublisher(url, exchange string, logger *slog.Logger) (*StatusChangePublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := newStatusChangePublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

func newStatusChangePublisher(ch channel, exchange string, logger *slog.Logger) *StatusChangePublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusChangePublisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.With("component", "RabbitStatusChangePublisher"),
	}
}

// RoutingKey is the key a change is published with.
func RoutingKey(to order.Status) string {
	return "order.status." + strings.ToLower(to.String())
}

func (p *StatusChangePublisher) Publish(ctx context.Context, changes ...order.StatusChange) error {
	for _, c := range changes {
		if err := ctx.Err(); err != nil {
			return err
		}

		e := events.NewStatusChanged(c)
		body, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode status change of order %s: %w", c.OrderID, err)
		}

		if err = p.channel.Publish(p.exchange, RoutingKey(c.To), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.EventID,
			Timestamp:    c.At,
			Body:         body,
		}); err != nil {
			return fmt.Errorf("publish status change of order %s: %w", c.OrderID, err)
		}
	}
	p.logger.DebugContext(ctx, "published status changes", "count", len(changes))
	return nil
}

func (p *StatusChangePublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

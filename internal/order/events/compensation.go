package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/shopcraft/storefront/internal/order/domain"
)

// StatusUpdater is the slice of the order service the consumer needs.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

// CompensationConsumer cancels orders whose payment failed downstream.
type CompensationConsumer struct {
	reader *kafka.Reader
	orders StatusUpdater
	log    *slog.Logger
}

func NewCompensationConsumer(brokers, topic string, orders StatusUpdater, log *slog.Logger) *CompensationConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
		GroupID: "storefront-order-compensation",
	})
	return &CompensationConsumer{reader: reader, orders: orders, log: log}
}

// Run consumes until the context is cancelled. A message that cannot be
// decoded or applied is logged and committed anyway; payment events are
// retried upstream, not by this consumer.
func (c *CompensationConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var event PaymentFailedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn("undecodable payment event", slog.Any("err", err))
		} else if err := c.orders.UpdateStatus(ctx, event.OrderID, domain.StatusCancelled); err != nil {
			c.log.Error("order cancellation failed",
				slog.String("order_id", event.OrderID),
				slog.String("reason", event.Reason),
				slog.Any("err", err))
		} else {
			c.log.Info("order cancelled on payment failure",
				slog.String("order_id", event.OrderID),
				slog.String("reason", event.Reason))
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Warn("commit failed", slog.Any("err", err))
		}
	}
}

func (c *CompensationConsumer) Close() error {
	return c.reader.Close()
}

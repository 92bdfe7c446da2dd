package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/shopcraft/storefront/internal/order/domain"
)

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewProducer(brokers, topic string, log *slog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, log: log}
}

// OrderCreated publishes after the order is already durable; consumers get
// the event eventually, the write path never waits on them beyond this call.
func (p *Producer) OrderCreated(ctx context.Context, order domain.Order) error {
	event := OrderCreatedEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		Status:      string(order.Status),
		Timestamp:   time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("ORDER#%s", order.ID)),
		Value: data,
	})
	if err != nil {
		return err
	}

	p.log.Info("order event published",
		slog.String("event_id", event.EventID),
		slog.String("order_id", order.ID))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

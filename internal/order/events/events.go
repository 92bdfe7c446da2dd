package events

import (
	"time"

	"github.com/shopcraft/storefront/internal/order/domain"
)

type OrderCreatedEvent struct {
	EventID     string        `json:"event_id"`
	OrderID     string        `json:"order_id"`
	UserID      string        `json:"user_id"`
	TotalAmount int64         `json:"total_amount"`
	Items       []domain.Item `json:"items"`
	Status      string        `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

// PaymentFailedEvent arrives from the payment service; the consumer cancels
// the affected order.
type PaymentFailedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

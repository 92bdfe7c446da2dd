package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is a member of the status enum. Transitions
// are not constrained: delivered and cancelled are terminal by convention
// only, matching the admin update path's behavior.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a frozen copy of a cart line taken at checkout time. Later catalog
// edits never reach into a placed order.
type Item struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int32  `json:"quantity"`
	Category  string `json:"category,omitempty"`
}

type Order struct {
	ID              string
	UserID          string
	Items           []Item
	Status          Status
	TotalAmount     int64 // computed once at creation, never recomputed
	ShippingAddress string
	PaymentMethod   string
	Notes           string
	TrackingNumber  string
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PlaceOrderRequest is the checkout input. SessionID locates the cart;
// UserID must belong to an authenticated session. A blank IdempotencyKey
// gets one generated, so only deliberate resubmissions dedupe.
type PlaceOrderRequest struct {
	UserID          string
	SessionID       string
	ShippingAddress string
	PaymentMethod   string
	Notes           string
	IdempotencyKey  string
}

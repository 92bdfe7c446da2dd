package app

import (
	"context"

	cartdomain "github.com/shopcraft/storefront/internal/cart/domain"
	"github.com/shopcraft/storefront/internal/order/domain"
)

type OrderRepo interface {
	// Create persists the order, conditional on its idempotency key being
	// unseen. A repeated key yields storeerr.ErrConflict.
	Create(ctx context.Context, order domain.Order) error
	GetByIdempotencyKey(ctx context.Context, key string) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	SetTracking(ctx context.Context, id, trackingNumber string) error
	Delete(ctx context.Context, id string) error
}

// CartAccess is the session cart store as checkout sees it.
type CartAccess interface {
	Load(ctx context.Context, sessionID string) (cartdomain.Cart, error)
	Clear(ctx context.Context, sessionID string) (cartdomain.Cart, error)
}

// CartMirror is the server-side cart document, cleared best-effort after a
// successful checkout.
type CartMirror interface {
	Clear(ctx context.Context, userID string) error
}

// EventPublisher announces placed orders; failures are logged, not returned.
type EventPublisher interface {
	OrderCreated(ctx context.Context, order domain.Order) error
}

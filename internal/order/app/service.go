package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopcraft/storefront/internal/order/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidInput     = errors.New("invalid input")
)

// Service is the one place where a cart snapshot becomes a durable order.
type Service struct {
	repo   OrderRepo
	carts  CartAccess
	mirror CartMirror
	events EventPublisher
	log    *slog.Logger
}

func NewService(repo OrderRepo, carts CartAccess, mirror CartMirror, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		carts:  carts,
		mirror: mirror,
		events: events,
		log:    log,
	}
}

// PlaceOrder validates, snapshots the cart into an order, commits it
// remotely, and only then clears the session cart. The remote-first order
// matters: clearing first and failing the write would destroy the purchase
// intent with no recoverable record. If the clear itself fails the cart and
// the placed order coexist briefly; that window is tolerated.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return domain.Order{}, ErrNotAuthenticated
	}

	cart, err := s.carts.Load(ctx, req.SessionID)
	if err != nil {
		return domain.Order{}, err
	}
	if cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.Item, 0, len(cart.Items))
	var total int64
	for _, it := range cart.Items {
		items = append(items, domain.Item{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Category:  it.Category,
		})
		total += it.UnitPrice * int64(it.Quantity)
	}

	key := strings.TrimSpace(req.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Items:           items,
		Status:          domain.StatusPending,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		IdempotencyKey:  key,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, storeerr.ErrConflict) {
			// Resubmission of an already-committed checkout: hand back the
			// original order and still clear the lingering cart.
			existing, getErr := s.repo.GetByIdempotencyKey(ctx, key)
			if getErr != nil {
				return domain.Order{}, getErr
			}
			s.finishCheckout(ctx, existing, req.SessionID, false)
			return existing, nil
		}
		return domain.Order{}, err
	}

	s.finishCheckout(ctx, order, req.SessionID, true)
	return order, nil
}

// finishCheckout runs the post-commit steps. All are best-effort: the order
// is already durable, so failures here are logged and swallowed.
func (s *Service) finishCheckout(ctx context.Context, order domain.Order, sessionID string, publish bool) {
	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.Warn("cart clear after checkout failed",
			slog.String("order_id", order.ID),
			slog.Any("err", err))
	}

	if s.mirror != nil {
		if err := s.mirror.Clear(ctx, order.UserID); err != nil {
			s.log.Warn("remote cart clear failed",
				slog.String("order_id", order.ID),
				slog.Any("err", err))
		}
	}

	if publish && s.events != nil {
		if err := s.events.OrderCreated(ctx, order); err != nil {
			s.log.Warn("order event publish failed",
				slog.String("order_id", order.ID),
				slog.Any("err", err))
		}
	}
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListUserOrders returns a user's orders newest-first.
func (s *Service) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNotAuthenticated
	}
	return s.repo.ListByUser(ctx, userID)
}

// ListAllOrders is the admin view, newest-first across all users.
func (s *Service) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) SetTracking(ctx context.Context, id, trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return ErrInvalidInput
	}
	return s.repo.SetTracking(ctx, id, trackingNumber)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

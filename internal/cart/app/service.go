package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/shopcraft/storefront/internal/cart/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

var ErrInvalidInput = errors.New("invalid input")

// Service keeps the authoritative view of what a session intends to buy.
// Every mutation is written through to the store immediately. Mutations of
// the same session are serialized, since the store itself only offers
// read-modify-write.
type Service struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// Load reads the persisted slot. An absent slot or a slot holding malformed
// JSON both yield an empty cart, never an error.
func (s *Service) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	raw, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, storeerr.ErrNotFound) {
		return domain.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	return domain.Cart{SessionID: sessionID, Items: decode(raw)}, nil
}

// AddItem merges on product ID: an existing line gets its quantity bumped,
// otherwise the item is appended. A non-positive quantity counts as 1.
func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.LineItem) (domain.Cart, error) {
	if strings.TrimSpace(item.ProductID) == "" || item.UnitPrice < 0 {
		return domain.Cart{}, ErrInvalidInput
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return cart, s.save(ctx, cart)
}

// SetQuantity replaces a line's quantity. Zero or negative is equivalent to
// removing the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int32) (domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, productID)
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return cart, s.save(ctx, cart)
		}
	}
	return cart, nil
}

// RemoveItem drops the matching line if present; no-op otherwise.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	kept := cart.Items[:0]
	removed := false
	for _, it := range cart.Items {
		if it.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	cart.Items = kept

	if !removed {
		return cart, nil
	}
	return cart, s.save(ctx, cart)
}

// Clear empties and persists an empty cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	cart := domain.Cart{SessionID: sessionID}
	return cart, s.save(ctx, cart)
}

func (s *Service) save(ctx context.Context, cart domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, cart.SessionID, raw)
}

func decode(raw []byte) []domain.LineItem {
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt slot: treated as empty state, never surfaced.
		return nil
	}
	return items
}

package app

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/shopcraft/storefront/internal/cart/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) Load(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return nil, storeerr.ErrNotFound
	}
	return raw, nil
}

func (f *fakeStore) Save(ctx context.Context, key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = append([]byte(nil), data...)
	return nil
}

func headphones() domain.LineItem {
	return domain.LineItem{ProductID: "p-1", Title: "Headphones", UnitPrice: 8999, Quantity: 1, Category: "electronics"}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent slot yields empty cart", func(t *testing.T) {
		svc := NewService(newFakeStore())
		cart, err := svc.Load(ctx, "s1")
		require.NoError(t, err)
		require.True(t, cart.IsEmpty())
	})

	t.Run("malformed slot yields empty cart, not an error", func(t *testing.T) {
		store := newFakeStore()
		store.data["s1"] = []byte(`{not json!`)
		svc := NewService(store)

		cart, err := svc.Load(ctx, "s1")
		require.NoError(t, err)
		require.True(t, cart.IsEmpty())
	})

	t.Run("blank session is rejected", func(t *testing.T) {
		svc := NewService(newFakeStore())
		_, err := svc.Load(ctx, "  ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("same product merges into one line", func(t *testing.T) {
		svc := NewService(newFakeStore())

		_, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)
		cart, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		require.Equal(t, int32(2), cart.Items[0].Quantity)
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		svc := NewService(newFakeStore())

		_, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)
		cart, err := svc.AddItem(ctx, "s1", domain.LineItem{ProductID: "p-2", Title: "Mug", UnitPrice: 3299})
		require.NoError(t, err)

		require.Len(t, cart.Items, 2)
		require.Equal(t, "p-1", cart.Items[0].ProductID)
		require.Equal(t, "p-2", cart.Items[1].ProductID)
	})

	t.Run("non-positive quantity counts as one", func(t *testing.T) {
		svc := NewService(newFakeStore())

		it := headphones()
		it.Quantity = 0
		cart, err := svc.AddItem(ctx, "s1", it)
		require.NoError(t, err)
		require.Equal(t, int32(1), cart.Items[0].Quantity)
	})

	t.Run("writes through immediately", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)

		_, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)

		// A fresh service over the same store sees the item.
		cart, err := NewService(store).Load(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
	})

	t.Run("missing product id is rejected", func(t *testing.T) {
		svc := NewService(newFakeStore())
		_, err := svc.AddItem(ctx, "s1", domain.LineItem{Title: "nameless"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the quantity", func(t *testing.T) {
		svc := NewService(newFakeStore())
		_, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)

		cart, err := svc.SetQuantity(ctx, "s1", "p-1", 5)
		require.NoError(t, err)
		require.Equal(t, int32(5), cart.Items[0].Quantity)
	})

	t.Run("zero or less is equivalent to remove", func(t *testing.T) {
		for _, q := range []int32{0, -1} {
			svc := NewService(newFakeStore())
			_, err := svc.AddItem(ctx, "s1", headphones())
			require.NoError(t, err)

			cart, err := svc.SetQuantity(ctx, "s1", "p-1", q)
			require.NoError(t, err)
			require.True(t, cart.IsEmpty())
		}
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		svc := NewService(newFakeStore())
		_, err := svc.AddItem(ctx, "s1", headphones())
		require.NoError(t, err)

		cart, err := svc.SetQuantity(ctx, "s1", "p-404", 3)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		require.Equal(t, int32(1), cart.Items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore())

	_, err := svc.AddItem(ctx, "s1", headphones())
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "s1", "p-1")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())

	// Removing again is a no-op, not an error.
	cart, err = svc.RemoveItem(ctx, "s1", "p-1")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.AddItem(ctx, "s1", headphones())
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "s1")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())

	// The cleared state is persisted, not just returned.
	require.Equal(t, "[]", string(store.data["s1"]))
}

func TestSessionIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore())

	_, err := svc.AddItem(ctx, "alice", headphones())
	require.NoError(t, err)

	cart, err := svc.Load(ctx, "bob")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty(), "one session's cart must not leak into another")
}

func TestConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore())

	const n = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(ctx, "s1", headphones())
			return err
		})
	}
	require.NoError(t, g.Wait())

	cart, err := svc.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, int32(n), cart.Items[0].Quantity)
}

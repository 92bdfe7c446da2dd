package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopcraft/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products map[string]domain.Product
}

func newFakeRepo() *fakeRepo { return &fakeRepo{products: make(map[string]domain.Product)} }

func (f *fakeRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = "gen-1"
	}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) Put(ctx context.Context, p domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeRepo) Featured(ctx context.Context) ([]domain.Product, error) { return nil, nil }

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("empty title -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, domain.Product{Title: "   ", Price: 100})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, domain.Product{Title: "Keyboard", Price: -1})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("valid input gets timestamps", func(t *testing.T) {
		p, err := svc.CreateProduct(ctx, domain.Product{Title: "Keyboard", Price: 4999})
		require.NoError(t, err)
		require.False(t, p.CreatedAt.IsZero())
		require.Equal(t, p.CreatedAt, p.UpdatedAt)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		created, err := svc.CreateProduct(ctx, domain.Product{Title: "Lamp", Price: 4200, Category: "home"})
		require.NoError(t, err)

		newPrice := int64(3900)
		updated, err := svc.UpdateProduct(ctx, created.ID, domain.Update{Price: &newPrice})
		require.NoError(t, err)
		require.Equal(t, int64(3900), updated.Price)
		require.Equal(t, "Lamp", updated.Title)
		require.Equal(t, "home", updated.Category)
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.UpdateProduct(ctx, "nope", domain.Update{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank title -> invalid", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		created, err := svc.CreateProduct(ctx, domain.Product{Title: "Lamp", Price: 4200})
		require.NoError(t, err)

		blank := "  "
		_, err = svc.UpdateProduct(ctx, created.ID, domain.Update{Title: &blank})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

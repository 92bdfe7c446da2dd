package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopcraft/storefront/internal/catalog/domain"
)

type fakeCreator struct {
	failTitle string
}

func (f *fakeCreator) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.Title == f.failTitle {
		return domain.Product{}, errors.New("duplicate key")
	}
	p.ID = "id-" + p.Title
	return p, nil
}

func TestRunReportsPerItem(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := []domain.Product{
		{Title: "a", Price: 100},
		{Title: "b", Price: 200},
		{Title: "c", Price: 300},
	}

	results := Run(context.Background(), &fakeCreator{failTitle: "b"}, products, 2, log)

	require.Len(t, results, 3)
	require.Equal(t, "a", results[0].Title)
	require.NoError(t, results[0].Err)
	require.Equal(t, "id-a", results[0].ID)

	// One failure does not abort the batch.
	require.Error(t, results[1].Err)
	require.NoError(t, results[2].Err)
	require.Equal(t, "id-c", results[2].ID)
}

func TestSampleProducts(t *testing.T) {
	products := SampleProducts()
	require.NotEmpty(t, products)
	for _, p := range products {
		require.NotEmpty(t, p.Title)
		require.Positive(t, p.Price)
		require.NotEmpty(t, p.Category)
	}
}

// Package seed loads the sample catalog. Inserts run concurrently and each
// item succeeds or fails on its own; a partial load is reported, not rolled
// back.
package seed

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shopcraft/storefront/internal/catalog/domain"
)

type ProductCreator interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
}

type Result struct {
	Title string
	ID    string
	Err   error
}

// Run inserts the sample products with at most maxConcurrent writes in
// flight. The returned slice has one entry per product, in input order.
func Run(ctx context.Context, svc ProductCreator, products []domain.Product, maxConcurrent int, log *slog.Logger) []Result {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	results := make([]Result, len(products))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for idx := range products {
		idx := idx
		g.Go(func() error {
			p := products[idx]
			created, err := svc.CreateProduct(ctx, p)
			results[idx] = Result{Title: p.Title, ID: created.ID, Err: err}
			if err != nil {
				log.Warn("seed insert failed", slog.String("title", p.Title), slog.Any("err", err))
			} else {
				log.Info("seeded product", slog.String("title", p.Title), slog.String("id", created.ID))
			}
			// Per-item reporting: never cancel the batch.
			return nil
		})
	}

	g.Wait()
	return results
}

// SampleProducts is the demo catalog. Prices in cents.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			Title:       "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Price:       8999,
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Featured:    true,
		},
		{
			Title:       "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable organic cotton t-shirt available in multiple colors.",
			Price:       2499,
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
		},
		{
			Title:       "Smart Water Bottle",
			Description: "Insulated smart water bottle that tracks your hydration and temperature.",
			Price:       4500,
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400",
			Featured:    true,
		},
		{
			Title:       "Yoga Exercise Mat",
			Description: "Non-slip, eco-friendly yoga mat perfect for all types of exercise and meditation.",
			Price:       3550,
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
		},
		{
			Title:       "Ceramic Coffee Mug Set",
			Description: "Beautiful handcrafted ceramic coffee mugs, set of 4 in assorted colors.",
			Price:       3299,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcf93a?w=400",
			Featured:    true,
		},
		{
			Title:       "LED Desk Lamp",
			Description: "Adjustable LED desk lamp with multiple brightness levels and USB charging port.",
			Price:       4200,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400",
		},
		{
			Title:       "Smartphone Case",
			Description: "Durable protective case for smartphones with wireless charging compatibility.",
			Price:       1999,
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=400",
		},
		{
			Title:       "Running Shoes",
			Description: "Lightweight running shoes with advanced cushioning and breathable mesh upper.",
			Price:       12999,
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Featured:    true,
		},
		{
			Title:       "Backpack Laptop Bag",
			Description: "Spacious laptop backpack with multiple compartments and anti-theft design.",
			Price:       5999,
			Category:    "other",
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
		},
		{
			Title:       "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking and long battery life.",
			Price:       2999,
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400",
		},
		{
			Title:       "Kitchen Knife Set",
			Description: "Professional chef knife set with wooden block and sharpening steel.",
			Price:       7999,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1594736797933-d0501ba2fe65?w=400",
			Featured:    true,
		},
		{
			Title:       "Bluetooth Speaker",
			Description: "Portable waterproof Bluetooth speaker with 360-degree sound and bass boost.",
			Price:       5499,
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400",
		},
		{
			Title:       "Denim Jeans",
			Description: "Classic straight-fit denim jeans made from premium cotton blend.",
			Price:       6999,
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
		},
		{
			Title:       "Indoor Plant Pot",
			Description: "Modern ceramic plant pot with drainage hole and matching saucer.",
			Price:       1850,
			Category:    "home",
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=400",
		},
	}
}

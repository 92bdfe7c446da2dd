package app

import (
	"context"

	"github.com/shopcraft/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Put(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
}

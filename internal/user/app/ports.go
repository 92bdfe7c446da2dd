package app

import (
	"context"

	"github.com/shopcraft/storefront/internal/user/domain"
)

type ProfileRepo interface {
	Create(ctx context.Context, p domain.Profile) error
	Get(ctx context.Context, uid string) (domain.Profile, error)
	Put(ctx context.Context, p domain.Profile) error
	Delete(ctx context.Context, uid string) error
}

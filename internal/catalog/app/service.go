package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopcraft/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)

	if p.Title == "" || p.Price < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// UpdateProduct applies a partial edit and bumps the update timestamp.
func (s *Service) UpdateProduct(ctx context.Context, id string, upd domain.Update) (domain.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return domain.Product{}, ErrInvalidInput
		}
		p.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return domain.Product{}, ErrInvalidInput
		}
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.Stock != nil {
		p.Stock = upd.Stock
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Put(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Featured(ctx)
}

package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopcraft/storefront/internal/user/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo ProfileRepo
}

func NewService(repo ProfileRepo) *Service {
	return &Service{repo: repo}
}

// CreateProfile is called once at registration, keyed by the auth identity.
func (s *Service) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if strings.TrimSpace(p.UID) == "" || strings.TrimSpace(p.Email) == "" {
		return domain.Profile{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *Service) GetProfile(ctx context.Context, uid string) (domain.Profile, error) {
	if strings.TrimSpace(uid) == "" {
		return domain.Profile{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, uid)
}

func (s *Service) UpdateProfile(ctx context.Context, uid string, upd domain.Update) (domain.Profile, error) {
	p, err := s.GetProfile(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}

	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.DisplayName != nil {
		p.DisplayName = *upd.DisplayName
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.Preferences != nil {
		p.Preferences = *upd.Preferences
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Put(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// DeleteProfile removes the storefront data; revoking the auth identity is
// the auth provider's job.
func (s *Service) DeleteProfile(ctx context.Context, uid string) error {
	if strings.TrimSpace(uid) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, uid)
}

// Package redisstore persists cart slots in Redis, one key per session.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopcraft/storefront/internal/storeerr"
)

const keyPrefix = "cart:"

type Store struct {
	client *redis.Client
}

func New(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storeerr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cart load: %v: %w", err, storeerr.ErrUnavailable)
	}
	return raw, nil
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	// Carts do not expire; abandonment cleanup is an operational concern.
	if err := s.client.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("cart save: %v: %w", err, storeerr.ErrUnavailable)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

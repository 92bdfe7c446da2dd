package app

import "context"

// Store is the persisted key-value slot behind the cart: one JSON-encoded
// array of line items per session key.
type Store interface {
	// Load returns storeerr.ErrNotFound when no slot exists for the key.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

package domain

import "time"

// Product is a catalog entry. Price is in minor units (cents). Stock is nil
// when the catalog does not track inventory for the product.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       int64
	Category    string
	Image       string
	Featured    bool
	Stock       *int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Update carries a partial edit; nil fields are left unchanged.
type Update struct {
	Title       *string
	Description *string
	Price       *int64
	Category    *string
	Image       *string
	Featured    *bool
	Stock       *int32
}

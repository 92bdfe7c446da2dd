package domain

import "time"

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

type Preferences struct {
	Newsletter    bool `json:"newsletter"`
	Notifications bool `json:"notifications"`
}

// Profile is the one-to-one companion of an authentication identity. The
// identity itself (credentials, tokens) lives with the external auth
// provider; this is only the storefront-facing data.
type Profile struct {
	UID         string
	Email       string
	FirstName   string
	LastName    string
	DisplayName string
	Phone       string
	Address     Address
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Update carries a partial profile edit; nil fields are left unchanged.
type Update struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
	Phone       *string
	Address     *Address
	Preferences *Preferences
}

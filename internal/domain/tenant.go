package domain

import "time"

// Tenant is one independently-branded rating community sharing the
// platform's infrastructure. Its ID doubles as the subdomain label
// (burritos.r8r.one -> "burritos").
type Tenant struct {
	ID        string        `json:"id"`
	Subdomain string        `json:"subdomain"`
	Name      string        `json:"name"`
	Config    *TenantConfig `json:"config,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TenantConfig drives what a community's rating form looks like.
// Immutable once constructed for the duration of a request.
type TenantConfig struct {
	Name               string           `json:"name"`
	RatingCategories   []RatingCategory `json:"ratingCategories"`
	ItemAttributes     []ItemAttribute  `json:"itemAttributes"`
	LocationRequired   bool             `json:"locationRequired"`
	ImageUploadEnabled bool             `json:"imageUploadEnabled"`
	Branding           *TenantBranding  `json:"branding,omitempty"`
}

type RatingCategory struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Required bool    `json:"required"`
	Weight   float64 `json:"weight,omitempty"`
	Min      int     `json:"min,omitempty"`
	Max      int     `json:"max,omitempty"`
}

type ItemAttribute struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"` // text, select, multiselect, scale, boolean
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

type TenantBranding struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
	FaviconURL     string `json:"faviconUrl,omitempty"`
}

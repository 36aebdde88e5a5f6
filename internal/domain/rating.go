package domain

import "time"

// RatingIDPrefix is the fixed prefix of normalized rating ids. The numeric
// remainder is the id older clients see.
const RatingIDPrefix = "rating_"

// Rating statuses. Only confirmed ratings are visible on the public map.
const (
	RatingStatusPending   = "pending"
	RatingStatusConfirmed = "confirmed"
)

// Item is a rateable thing at a venue, owned by one tenant.
type Item struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	VenueName string    `json:"venue_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Zipcode   string    `json:"zipcode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is the normalized source-of-truth shape. The legacy flat shape is
// derived from it on every read, never stored.
type Rating struct {
	ID          string             `json:"id"`
	TenantID    string             `json:"tenant_id"`
	ItemID      string             `json:"item_id"`
	Scores      map[string]float64 `json:"scores"`
	PricePaid   float64            `json:"price_paid,omitempty"`
	Ingredients []string           `json:"ingredients,omitempty"`
	Review      string             `json:"review,omitempty"`
	Reviewer    ReviewerInfo       `json:"reviewer_info"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ReviewerInfo is the anonymous-but-consistent reviewer identity attached
// to a rating.
type ReviewerInfo struct {
	Name          string `json:"name,omitempty"`
	IdentityHash  string `json:"identity_hash,omitempty"`
	Emoji         string `json:"emoji,omitempty"`
	ImageFilename string `json:"image_filename,omitempty"`
}

// Image is an uploaded photo attached to ratings.
type Image struct {
	Filename    string    `json:"filename"`
	TenantID    string    `json:"tenant_id"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

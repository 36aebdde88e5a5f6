package domain

import "context"

type TenantStore interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id string) (*Tenant, error)
}

type ItemStore interface {
	// Upsert finds an item by (tenant, venue, name) or creates it.
	Upsert(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id string, tenantID string) (*Item, error)
}

type RatingStore interface {
	Create(ctx context.Context, r *Rating) error
	GetByID(ctx context.Context, id string, tenantID string) (*Rating, *Item, error)
	ListConfirmed(ctx context.Context, tenantID string) ([]RatingWithItem, error)
	UpdateStatus(ctx context.Context, id string, tenantID string, status string) error
	UpdateStatusBulk(ctx context.Context, ids []string, tenantID string, status string) (int64, error)
	Delete(ctx context.Context, id string, tenantID string) error
}

// RatingWithItem is the joined read shape the legacy adapter consumes.
type RatingWithItem struct {
	Rating
	Item Item
}

type ImageStore interface {
	Put(ctx context.Context, img *Image) error
	Get(ctx context.Context, filename string) (*Image, error)
}
